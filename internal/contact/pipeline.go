package contact

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/likhastudio/site/internal/mail"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
)

const tracerName = "github.com/likhastudio/site/internal/contact"

// Outcome records how far delivery got.
type Outcome int

const (
	// NoneSent means no message reached the provider successfully.
	NoneSent Outcome = iota
	// OnlyFirstSent means the operator was notified but the confirmation failed.
	OnlyFirstSent
	// BothSent means both messages were accepted by the provider.
	BothSent
)

func (o Outcome) String() string {
	switch o {
	case NoneSent:
		return "none_sent"
	case OnlyFirstSent:
		return "only_first_sent"
	case BothSent:
		return "both_sent"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome of one Submit call. It is meaningful even when Submit
// returns an error.
type Result struct {
	Outcome Outcome
}

// Pipeline validates submissions and relays them through a mail.Sender.
type Pipeline struct {
	sender   mail.Sender
	composer Composer
	tracer   trace.Tracer
	logger   *log.Logger
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithTracer overrides the global tracer provider.
func WithTracer(tp trace.TracerProvider) Option {
	return func(p *Pipeline) {
		if tp != nil {
			p.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithLogger overrides log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPipeline returns a pipeline that sends through sender.
func NewPipeline(sender mail.Sender, composer Composer, opts ...Option) *Pipeline {
	p := &Pipeline{
		sender:   sender,
		composer: composer,
		tracer:   otel.Tracer(tracerName),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Submit validates s, notifies the operator, then confirms to the submitter.
//
// Validation failures return *ValidationError with NoneSent. Provider
// failures return *DeliveryError; when the confirmation fails the result is
// OnlyFirstSent because the operator notification was already delivered.
// lang selects the confirmation copy.
func (p *Pipeline) Submit(ctx context.Context, s Submission, lang language.Tag) (Result, error) {
	if p == nil || p.sender == nil {
		return Result{Outcome: NoneSent}, errors.New("contact pipeline is not configured")
	}
	ctx, span := p.tracer.Start(ctx, "contact.submit")
	defer span.End()

	result, err := p.submit(ctx, s, lang)
	span.SetAttributes(attribute.String("contact.outcome", result.Outcome.String()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	p.logResult(result, err)
	return result, err
}

func (p *Pipeline) submit(ctx context.Context, s Submission, lang language.Tag) (Result, error) {
	if err := Validate(s); err != nil {
		return Result{Outcome: NoneSent}, err
	}
	s = s.Trimmed()

	notification, err := p.composer.Notification(ctx, s)
	if err != nil {
		return Result{Outcome: NoneSent}, &DeliveryError{Stage: StageNotify, Err: err}
	}
	if err := p.send(ctx, "contact.notify_operator", notification); err != nil {
		return Result{Outcome: NoneSent}, &DeliveryError{Stage: StageNotify, Err: err}
	}

	confirmation, err := p.composer.Confirmation(ctx, s, lang)
	if err != nil {
		return Result{Outcome: OnlyFirstSent}, &DeliveryError{Stage: StageConfirm, Err: err}
	}
	if err := p.send(ctx, "contact.confirm_submitter", confirmation); err != nil {
		return Result{Outcome: OnlyFirstSent}, &DeliveryError{Stage: StageConfirm, Err: err}
	}
	return Result{Outcome: BothSent}, nil
}

func (p *Pipeline) send(ctx context.Context, spanName string, msg mail.Message) error {
	ctx, span := p.tracer.Start(ctx, spanName)
	defer span.End()

	if err := p.sender.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (p *Pipeline) logResult(result Result, err error) {
	if p.logger == nil {
		return
	}
	switch {
	case err == nil:
		p.logger.Printf("contact submission outcome=%s", result.Outcome)
	case IsValidationReason(err, ReasonMissingFields), IsValidationReason(err, ReasonInvalidEmail):
		p.logger.Printf("contact submission rejected outcome=%s err=%v", result.Outcome, err)
	default:
		p.logger.Printf("contact submission failed outcome=%s err=%v", result.Outcome, err)
	}
}
