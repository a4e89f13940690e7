package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jbjulia/mccmnc/internal/models"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
	"github.com/jbjulia/mccmnc/pkg/scheduler"
)

// UpdateService runs the pipeline in the background, one run at a time.
type UpdateService struct {
	scheduler *scheduler.Scheduler[*models.UpdateResult]
	updater   *Updater
	status    models.UpdateStatus
	running   bool
	progress  [2]int
	future    *scheduler.Future[scheduler.Result[*models.UpdateResult]]
	done      chan struct{}
	mu        sync.Mutex
}

func NewUpdateService(s *scheduler.Scheduler[*models.UpdateResult], u *Updater) *UpdateService {
	return &UpdateService{
		scheduler: s,
		updater:   u,
		status:    models.UpdateStatus{State: models.UpdateStateIdle},
	}
}

// Start launches an update and returns immediately. It fails with
// UpdateInProgressError while another update runs.
func (u *UpdateService) Start() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.running {
		return srvErrors.NewUpdateInProgressError()
	}
	u.running = true
	u.progress = [2]int{}
	u.status.State = models.UpdateStateFetching
	u.status.Error = nil
	u.done = make(chan struct{})

	u.future = u.scheduler.AddWork(func(ctx context.Context) (*models.UpdateResult, error) {
		return u.updater.Run(ctx, statusObserver{u})
	})
	go u.wait(u.future, u.done)

	zap.S().Named("update_service").Info("update started")
	return nil
}

// Wait blocks until the running update, if any, completes.
func (u *UpdateService) Wait(ctx context.Context) error {
	u.mu.Lock()
	done := u.done
	u.mu.Unlock()

	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop cancels the running update.
func (u *UpdateService) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.running && u.future != nil {
		u.future.Stop()
	}
}

func (u *UpdateService) Status() models.UpdateStatus {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.status
}

// BuildProgress returns the rows inserted so far and the total of the
// current or last build.
func (u *UpdateService) BuildProgress() (int, int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.progress[0], u.progress[1]
}

// Busy reports whether the scheduler still holds update work.
func (u *UpdateService) Busy() bool {
	return u.scheduler.InFlight() > 0
}

// statusObserver mirrors pipeline events into the service status.
type statusObserver struct {
	svc *UpdateService
}

func (o statusObserver) StateChanged(state models.UpdateState) {
	o.svc.mu.Lock()
	defer o.svc.mu.Unlock()
	o.svc.status.State = state
}

func (o statusObserver) Progress(done, total int) {
	o.svc.mu.Lock()
	defer o.svc.mu.Unlock()
	o.svc.progress = [2]int{done, total}
}

func (u *UpdateService) wait(f *scheduler.Future[scheduler.Result[*models.UpdateResult]], done chan struct{}) {
	defer close(done)

	result := <-f.C()

	u.mu.Lock()
	defer u.mu.Unlock()

	u.running = false
	if result.Err != nil {
		u.status.State = models.UpdateStateFailed
		u.status.Error = result.Err
		zap.S().Named("update_service").Debugw("update finished with error", "error", result.Err)
		return
	}
	u.status.State = models.UpdateStateDone
	u.status.LastResult = result.Data
}
