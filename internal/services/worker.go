package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-job-screening/internal/repositories"
)

// Worker drains the screening queue. Screenings are independent of each
// other, so a slow or failed run never stalls the others.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueScreening(screeningID uuid.UUID)
}

type worker struct {
	screeningRepo repositories.ScreeningRepository
	screener      ScreenerService
	queue         chan uuid.UUID
	concurrency   int
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

func NewWorker(
	screeningRepo repositories.ScreeningRepository,
	screener ScreenerService,
	concurrency int,
) Worker {
	return &worker{
		screeningRepo: screeningRepo,
		screener:      screener,
		queue:         make(chan uuid.UUID, 100),
		concurrency:   concurrency,
		stopChan:      make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processScreenings(ctx, i+1)
	}

	// Requeue screenings that were accepted but never picked up, e.g. after
	// a restart.
	w.wg.Add(1)
	go w.pollPendingScreenings(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueScreening implements Worker.
func (w *worker) EnqueueScreening(screeningID uuid.UUID) {
	select {
	case w.queue <- screeningID:
		log.Printf("📥 Screening %s enqueued\n", screeningID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue screening %s\n", screeningID)
	}
}

func (w *worker) processScreenings(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case screeningID := <-w.queue:
			log.Printf("👷 Worker #%d processing screening %s\n", workerID, screeningID)
			if err := w.screener.ScreenCandidate(ctx, screeningID); err != nil {
				log.Printf("❌ Worker #%d failed to process screening %s: %v\n", workerID, screeningID, err)
			} else {
				log.Printf("✅ Worker #%d completed screening %s\n", workerID, screeningID)
			}
		}
	}
}

func (w *worker) pollPendingScreenings(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Pending screenings poller stopped")
			return
		case <-ticker.C:
			pending, err := w.screeningRepo.FindPendingJobs(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending screenings: %v\n", err)
				continue
			}

			if len(pending) > 0 {
				log.Printf("📋 Found %d pending screenings\n", len(pending))
			}

			for _, job := range pending {
				w.EnqueueScreening(job.ID)
			}
		}
	}
}
