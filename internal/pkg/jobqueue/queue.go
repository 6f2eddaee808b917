package jobqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/TobiasLindner/DevFolio/internal/pkg/cache"
)

const (
	// Redis key prefixes
	JobKeyPrefix = "job:"
	JobQueueKey  = "job_queue"

	// Job settings
	DefaultMaxRetries = 3
	JobTTL            = 24 * time.Hour // Jobs expire after 24 hours

	popTimeout = 2 * time.Second
)

// Handler processes one job of a registered type
type Handler func(job *Job) error

// Queue manages background jobs using Redis
type Queue struct {
	client   *redis.Client
	workers  int
	handlers map[JobType]Handler
	stopCh   chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
	running  bool
}

// NewQueue creates a new job queue
func NewQueue(workers int) *Queue {
	if workers <= 0 {
		workers = 3 // Default number of workers
	}

	return &Queue{
		client:   cache.GetClient(),
		workers:  workers,
		handlers: make(map[JobType]Handler),
		stopCh:   make(chan struct{}),
	}
}

// RegisterHandler binds a handler to a job type. Must be called before Start.
func (q *Queue) RegisterHandler(jobType JobType, handler Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[jobType] = handler
}

// Start starts the job queue workers
func (q *Queue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.running {
		return
	}

	q.running = true
	fiberlog.Infof("[JobQueue] Starting %d workers", q.workers)

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
}

// Stop stops the job queue workers and waits for in-flight jobs
func (q *Queue) Stop() {
	q.mu.Lock()
	if !q.running {
		q.mu.Unlock()
		return
	}
	q.running = false
	q.mu.Unlock()

	fiberlog.Info("[JobQueue] Stopping workers...")
	close(q.stopCh)
	q.wg.Wait()
	fiberlog.Info("[JobQueue] All workers stopped")
}

// Enqueue persists a job and pushes it onto the queue
func (q *Queue) Enqueue(job *Job) error {
	ctx := context.Background()

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if err := q.client.Set(ctx, JobKeyPrefix+job.ID, data, JobTTL).Err(); err != nil {
		return fmt.Errorf("failed to store job: %w", err)
	}
	if err := q.client.RPush(ctx, JobQueueKey, job.ID).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}

	fiberlog.Infof("[JobQueue] Enqueued %s job %s", job.Type, job.ID)
	return nil
}

// worker pops and processes jobs until the queue stops
func (q *Queue) worker(id int) {
	defer q.wg.Done()
	ctx := context.Background()

	for {
		select {
		case <-q.stopCh:
			return
		default:
		}

		result, err := q.client.BLPop(ctx, popTimeout, JobQueueKey).Result()
		if err != nil {
			if err != redis.Nil {
				fiberlog.Errorf("[JobQueue] Worker %d pop error: %v", id, err)
				time.Sleep(time.Second)
			}
			continue
		}
		if len(result) < 2 {
			continue
		}

		q.processJob(ctx, result[1])
	}
}

// processJob loads, dispatches and finalizes one job, requeueing on failure
// until MaxRetries is exhausted.
func (q *Queue) processJob(ctx context.Context, jobID string) {
	jobKey := JobKeyPrefix + jobID

	data, err := q.client.Get(ctx, jobKey).Result()
	if err != nil {
		if err != redis.Nil {
			fiberlog.Errorf("[JobQueue] Failed to load job %s: %v", jobID, err)
		}
		return
	}

	var job Job
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		fiberlog.Errorf("[JobQueue] Failed to unmarshal job %s: %v", jobID, err)
		return
	}

	q.mu.Lock()
	handler, ok := q.handlers[job.Type]
	q.mu.Unlock()
	if !ok {
		fiberlog.Errorf("[JobQueue] No handler registered for job type %s", job.Type)
		q.saveJob(ctx, &job, JobStatusFailed, "no handler registered")
		return
	}

	q.saveJob(ctx, &job, JobStatusProcessing, "")

	if err := handler(&job); err != nil {
		job.Retries++
		if job.Retries < job.MaxRetries {
			fiberlog.Warnf("[JobQueue] Job %s failed (attempt %d/%d): %v", job.ID, job.Retries, job.MaxRetries, err)
			q.saveJob(ctx, &job, JobStatusPending, err.Error())
			if pushErr := q.client.RPush(ctx, JobQueueKey, job.ID).Err(); pushErr != nil {
				fiberlog.Errorf("[JobQueue] Failed to requeue job %s: %v", job.ID, pushErr)
			}
			return
		}

		fiberlog.Errorf("[JobQueue] Job %s failed permanently: %v", job.ID, err)
		q.saveJob(ctx, &job, JobStatusFailed, err.Error())
		return
	}

	q.saveJob(ctx, &job, JobStatusCompleted, "")
}

func (q *Queue) saveJob(ctx context.Context, job *Job, status JobStatus, lastError string) {
	job.Status = status
	job.LastError = lastError
	job.UpdatedAt = time.Now()

	data, err := json.Marshal(job)
	if err != nil {
		fiberlog.Errorf("[JobQueue] Failed to marshal job %s: %v", job.ID, err)
		return
	}
	if err := q.client.Set(ctx, JobKeyPrefix+job.ID, data, JobTTL).Err(); err != nil {
		fiberlog.Errorf("[JobQueue] Failed to save job %s: %v", job.ID, err)
	}
}

// Global queue instance
var (
	globalQueue *Queue
	queueOnce   sync.Once
)

// GetQueue returns the global queue, creating it on first use
func GetQueue() *Queue {
	queueOnce.Do(func() {
		globalQueue = NewQueue(3)
		globalQueue.RegisterHandler(JobTypeEmailSend, processEmailSend)
		globalQueue.RegisterHandler(JobTypeMediaBackup, processMediaBackup)
		globalQueue.RegisterHandler(JobTypeMediaBackupDelete, processMediaBackupDelete)
	})
	return globalQueue
}

// EnqueueEmail queues a single email delivery
func EnqueueEmail(to, subject, body string) error {
	job, err := NewJob(JobTypeEmailSend, EmailSendPayload{To: to, Subject: subject, Body: body})
	if err != nil {
		return err
	}
	return GetQueue().Enqueue(job)
}

// EnqueueMediaBackup queues an offsite copy of a stored upload
func EnqueueMediaBackup(mediaPath, localPath string) error {
	job, err := NewJob(JobTypeMediaBackup, MediaBackupPayload{MediaPath: mediaPath, LocalPath: localPath})
	if err != nil {
		return err
	}
	return GetQueue().Enqueue(job)
}

// EnqueueMediaBackupDelete queues removal of a deleted upload's backup copy
func EnqueueMediaBackupDelete(mediaPath string) error {
	job, err := NewJob(JobTypeMediaBackupDelete, MediaBackupDeletePayload{MediaPath: mediaPath})
	if err != nil {
		return err
	}
	return GetQueue().Enqueue(job)
}
