// Package pronounce orchestrates the recording capture and the remote
// pronunciation evaluation, and classifies raw scores into feedback tiers.
package pronounce

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mzuhdi/tartil/internal/asr"
	"github.com/mzuhdi/tartil/internal/capture"
)

// TargetKind selects which evaluation endpoint a recording is scored
// against.
type TargetKind string

const (
	TargetWord  TargetKind = "word"
	TargetAyah  TargetKind = "ayah"
	TargetSurah TargetKind = "surah"
)

// Target identifies the content a recording should be compared to.
type Target struct {
	Kind  TargetKind
	Surah int
	Ayah  int // unused for surah targets
	Word  int // 1-based, word targets only
}

func (t Target) String() string {
	switch t.Kind {
	case TargetWord:
		return fmt.Sprintf("%d:%d:%d", t.Surah, t.Ayah, t.Word)
	case TargetAyah:
		return fmt.Sprintf("%d:%d", t.Surah, t.Ayah)
	default:
		return fmt.Sprintf("%d", t.Surah)
	}
}

// EvaluationUnavailableError reports a failed evaluation call. It is
// recoverable: the recording artifact is kept so the user can resubmit
// without re-recording.
type EvaluationUnavailableError struct {
	Err error
}

func (e *EvaluationUnavailableError) Error() string {
	return fmt.Sprintf("evaluation unavailable: %v", e.Err)
}

func (e *EvaluationUnavailableError) Unwrap() error { return e.Err }

// ErrNoRecording is returned by Begin when there is no finished artifact.
var ErrNoRecording = errors.New("no recording to submit")

// Feedback is the classified result of one completed evaluation. Read-only
// once created; cleared explicitly by the user.
type Feedback struct {
	Score   float64
	Tier    Tier
	Message string
	Details asr.Result
}

// Evaluator is the remote scoring collaborator (implemented by asr.Client).
type Evaluator interface {
	EvaluateWord(ctx context.Context, audio []byte, surah, ayah, word int) (*asr.Result, error)
	EvaluateAyah(ctx context.Context, audio []byte, surah, ayah int) (*asr.Result, error)
	EvaluateSurah(ctx context.Context, audio []byte, surah int) (*asr.Result, error)
}

// Submission snapshots one evaluation request. The ID ties the eventual
// result back to the flow so a response landing after the user moved to a
// different target (or resubmitted) is dropped instead of overwriting the
// wrong feedback slot.
type Submission struct {
	ID     string
	Target Target
	Audio  []byte
}

// Flow drives the pronunciation practice loop for one practice screen.
// All methods except Evaluate must be called from the UI event loop.
type Flow struct {
	Recorder *capture.Recorder

	eval       Evaluator
	thresholds Thresholds

	target     Target
	feedback   *Feedback
	evaluating bool
	pendingID  string
	lastErr    error
}

// NewFlow creates a Flow over the given recorder and evaluator.
func NewFlow(rec *capture.Recorder, eval Evaluator, thresholds Thresholds) *Flow {
	return &Flow{Recorder: rec, eval: eval, thresholds: thresholds}
}

// SetTarget switches the practice target. Any in-flight evaluation is
// orphaned (its result will be dropped) and stale feedback is cleared.
func (f *Flow) SetTarget(t Target) {
	f.target = t
	f.pendingID = ""
	f.evaluating = false
	f.feedback = nil
	f.lastErr = nil
}

// Target returns the current practice target.
func (f *Flow) Target() Target { return f.target }

// Begin snapshots the captured audio for submission and marks the flow as
// evaluating. It fails with ErrNoRecording when nothing has been captured
// (or a recording is still running).
func (f *Flow) Begin() (Submission, error) {
	if f.Recorder.Recording() || f.Recorder.Audio() == nil {
		return Submission{}, ErrNoRecording
	}
	sub := Submission{
		ID:     uuid.New().String(),
		Target: f.target,
		Audio:  f.Recorder.Audio(),
	}
	f.pendingID = sub.ID
	f.evaluating = true
	f.lastErr = nil
	return sub, nil
}

// Evaluate performs the remote call for a submission and classifies the
// result. It never touches Flow state, so it is safe to run off the event
// loop; hand its outcome to Finish.
func (f *Flow) Evaluate(ctx context.Context, sub Submission) (*Feedback, error) {
	var (
		res *asr.Result
		err error
	)
	switch sub.Target.Kind {
	case TargetWord:
		res, err = f.eval.EvaluateWord(ctx, sub.Audio, sub.Target.Surah, sub.Target.Ayah, sub.Target.Word)
	case TargetAyah:
		res, err = f.eval.EvaluateAyah(ctx, sub.Audio, sub.Target.Surah, sub.Target.Ayah)
	case TargetSurah:
		res, err = f.eval.EvaluateSurah(ctx, sub.Audio, sub.Target.Surah)
	default:
		err = fmt.Errorf("unknown target kind %q", sub.Target.Kind)
	}
	if err != nil {
		return nil, &EvaluationUnavailableError{Err: err}
	}

	tier := Classify(res.ScorePercent, f.thresholds)
	return &Feedback{
		Score:   res.ScorePercent,
		Tier:    tier,
		Message: Message(sub.Target.Kind, tier),
		Details: *res,
	}, nil
}

// Finish applies an evaluation outcome. Results for a superseded
// submission ID are dropped and Finish reports false. On error the
// recording artifact is untouched so the user can retry the submission.
func (f *Flow) Finish(id string, fb *Feedback, err error) bool {
	if id != f.pendingID {
		return false
	}
	f.pendingID = ""
	f.evaluating = false

	if err != nil {
		f.lastErr = err
		return true
	}
	f.feedback = fb
	f.lastErr = nil
	return true
}

// ClearFeedback implements the "try again" gesture: it drops the feedback,
// the error, and the captured artifact.
func (f *Flow) ClearFeedback() {
	f.feedback = nil
	f.lastErr = nil
	f.Recorder.Clear()
}

// Feedback returns the current classified feedback, or nil.
func (f *Flow) Feedback() *Feedback { return f.feedback }

// Evaluating reports whether a submission is in flight; the UI disables
// duplicate submissions while true.
func (f *Flow) Evaluating() bool { return f.evaluating }

// LastError returns the most recent evaluation failure, or nil.
func (f *Flow) LastError() error { return f.lastErr }
