package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/platform/metrics"
	"transport-optimizer/internal/platform/obs"
	"transport-optimizer/internal/ports"
	"transport-optimizer/internal/report"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSuccess    Phase = "success"
	PhaseFailure    Phase = "failure"
)

// SessionState is a snapshot of the session.
// Result is only meaningful in PhaseSuccess and Message only in PhaseFailure.
type SessionState struct {
	Phase     Phase
	RequestID uint64
	Result    domain.GroupedResult
	Message   string
}

// ErrSuperseded is returned by Submit when a newer submission was issued
// before this one resolved; its outcome was discarded.
var ErrSuperseded = errors.New("submission superseded by a newer request")

// ErrBusy is returned by TrySubmitFile while another submission is in flight.
var ErrBusy = errors.New("a submission is already in progress")

// Session owns the single SessionState of one client session.
//
// Every submission is tagged with a monotonically increasing request id and
// only the resolution of the latest id may change the state. A superseded
// call is not aborted; its result is dropped.
type Session struct {
	optimizer ports.Optimizer

	mu     sync.Mutex
	state  SessionState
	latest uint64
	subs   map[chan SessionState]struct{}
}

func NewSession(optimizer ports.Optimizer) *Session {
	return &Session{
		optimizer: optimizer,
		state:     SessionState{Phase: PhaseIdle},
		subs:      make(map[chan SessionState]struct{}),
	}
}

// State returns the current snapshot.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Busy reports whether a submission is in flight.
func (s *Session) Busy() bool {
	return s.State().Phase == PhaseSubmitting
}

// Submit runs one submission with the default dataset file name.
func (s *Session) Submit(ctx context.Context, dataset []byte, costRate, minQuantity string) (SessionState, error) {
	return s.SubmitFile(ctx, domain.DefaultDatasetFilename, dataset, costRate, minQuantity)
}

// SubmitFile validates the inputs, calls the optimizer and stores the grouped result.
//
// The returned error is a *domain.ValidationError or *domain.ServiceError when
// the submission failed, or ErrSuperseded when a newer submission won. The
// returned state is the session state after this call.
func (s *Session) SubmitFile(
	ctx context.Context,
	filename string,
	dataset []byte,
	costRate string,
	minQuantity string,
) (SessionState, error) {
	return s.submit(ctx, false, filename, dataset, costRate, minQuantity)
}

// TrySubmitFile is SubmitFile, except that it returns ErrBusy without touching
// the state when a submission is already in flight.
func (s *Session) TrySubmitFile(
	ctx context.Context,
	filename string,
	dataset []byte,
	costRate string,
	minQuantity string,
) (SessionState, error) {
	return s.submit(ctx, true, filename, dataset, costRate, minQuantity)
}

func (s *Session) submit(
	ctx context.Context,
	rejectWhenBusy bool,
	filename string,
	dataset []byte,
	costRate string,
	minQuantity string,
) (SessionState, error) {
	req, buildErr := domain.BuildRequestFile(filename, dataset, costRate, minQuantity)

	s.mu.Lock()
	if rejectWhenBusy && s.state.Phase == PhaseSubmitting {
		st := s.state
		s.mu.Unlock()
		return st, ErrBusy
	}

	id := s.nextID()
	if buildErr != nil {
		defer s.mu.Unlock()
		return s.transition(ctx, SessionState{Phase: PhaseFailure, RequestID: id, Message: domain.FailureMessage(buildErr)}), buildErr
	}
	s.transition(ctx, SessionState{Phase: PhaseSubmitting, RequestID: id})
	s.mu.Unlock()

	routes, err := s.optimizer.Submit(ctx, req)
	if err != nil {
		var se *domain.ServiceError
		if !errors.As(err, &se) {
			err = domain.NewTransportError(err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.latest {
		metrics.StaleResponses.Inc()
		log.Printf("req_id=%s session discarded stale response req=%d latest=%d", obs.RequestID(ctx), id, s.latest)
		return s.state, ErrSuperseded
	}

	if err != nil {
		return s.transition(ctx, SessionState{Phase: PhaseFailure, RequestID: id, Message: domain.FailureMessage(err)}), err
	}

	return s.transition(ctx, SessionState{Phase: PhaseSuccess, RequestID: id, Result: GroupRoutes(routes)}), nil
}

// Export serializes the current successful result. It never changes the state.
func (s *Session) Export() ([]byte, error) {
	st := s.State()
	if st.Phase != PhaseSuccess {
		return nil, domain.ErrNoResults
	}
	return report.ExportCSV(st.Result)
}

// Subscribe returns a channel receiving a snapshot after every transition.
// Slow subscribers only see the latest snapshot.
func (s *Session) Subscribe() chan SessionState {
	ch := make(chan SessionState, 1)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs[ch] = struct{}{}
	ch <- s.state

	return ch
}

func (s *Session) Unsubscribe(ch chan SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[ch]; ok {
		delete(s.subs, ch)
		close(ch)
	}
}

// nextID must be called with mu held.
func (s *Session) nextID() uint64 {
	s.latest++
	return s.latest
}

// transition must be called with mu held.
func (s *Session) transition(ctx context.Context, next SessionState) SessionState {
	prev := s.state.Phase
	s.state = next

	metrics.SessionTransitions.WithLabelValues(string(next.Phase)).Inc()
	log.Printf("req_id=%s session transition req=%d from=%s to=%s", obs.RequestID(ctx), next.RequestID, prev, next.Phase)

	for ch := range s.subs {
		select {
		case ch <- next:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- next:
			default:
			}
		}
	}

	return next
}
