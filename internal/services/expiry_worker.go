package services

import (
	"log"
	"sync"
	"time"

	"unityeats/internal/models"
	"unityeats/internal/notify"
	"unityeats/internal/repository"
)

// ExpiryWorker periodically sweeps pending and accepted donations whose
// expiry date has passed and persists the expired transition. Readers already
// report such rows as expired via EffectiveStatus; the sweep makes the stored
// state converge and emits the change event.
type ExpiryWorker struct {
	donationRepo repository.DonationRepository
	publisher    *notify.Publisher
	interval     time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

func NewExpiryWorker(donationRepo repository.DonationRepository, publisher *notify.Publisher, interval time.Duration) *ExpiryWorker {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &ExpiryWorker{
		donationRepo: donationRepo,
		publisher:    publisher,
		interval:     interval,
		stopChan:     make(chan struct{}),
	}
}

func (w *ExpiryWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.Sweep(time.Now())
		for {
			select {
			case <-ticker.C:
				w.Sweep(time.Now())
			case <-w.stopChan:
				return
			}
		}
	}()
}

func (w *ExpiryWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopChan)
	w.wg.Wait()
}

// Sweep expires every overdue donation it can. Each row is written with a
// conditional update, so a donation collected between the read and the write
// is left alone.
func (w *ExpiryWorker) Sweep(now time.Time) int {
	donations, err := w.donationRepo.FindExpirable(now)
	if err != nil {
		log.Printf("Expiry sweep failed to list donations: %v", err)
		return 0
	}

	expired := 0
	for _, d := range donations {
		err := w.donationRepo.UpdateStatus(d.ID, d.Status, models.DonationExpired, nil)
		if err != nil {
			if err != repository.ErrStatusConflict {
				log.Printf("Expiry sweep failed to expire donation %s: %v", d.ID, err)
			}
			continue
		}

		d.Status = models.DonationExpired
		w.publisher.DonationEvent(notify.EventDonationExpired, d)
		expired++
	}

	if expired > 0 {
		log.Printf("Expiry sweep marked %d donation(s) expired", expired)
	}
	return expired
}
