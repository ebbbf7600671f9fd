// Package pipeline orchestrates one voice command end to end: normalize the
// upload, transcribe it, classify the intent, act on the ledger, compose a
// localized reply and synthesize it. Each submission walks a small state
// machine and releases its temporary audio on every exit path.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ojaledger/ojaledger/pkg/audio/normalize"
	"github.com/ojaledger/ojaledger/pkg/audio/wav"
	"github.com/ojaledger/ojaledger/pkg/extract"
	"github.com/ojaledger/ojaledger/pkg/intent"
	"github.com/ojaledger/ojaledger/pkg/lang"
	"github.com/ojaledger/ojaledger/pkg/ledger"
	"github.com/ojaledger/ojaledger/pkg/numeral"
	"github.com/ojaledger/ojaledger/pkg/respond"
	"github.com/ojaledger/ojaledger/pkg/speech"
	"github.com/ojaledger/ojaledger/pkg/voice"
)

// States of one voice-command submission.
const (
	StateIdle                   State = "idle"
	StateNormalizing            State = "normalizing"
	StateTranscribing           State = "transcribing"
	StateClassifyingIntent      State = "classifying_intent"
	StateLoggingTransaction     State = "logging_transaction"
	StateQueryingDebtors        State = "querying_debtors"
	StateQueryingAggregate      State = "querying_aggregate"
	StateRespondingCapabilities State = "responding_capabilities"
	StateComposingResponse      State = "composing_response"
	StateDone                   State = "done"
	StateFailed                 State = "failed"
)

type State string

// ErrInput marks failures caused by the trader's upload: unusable audio, an
// empty transcript, an utterance with nothing recordable in it. The reply
// carries a localized apology and the HTTP layer maps it to a client error.
var ErrInput = errors.New("pipeline: unusable input")

// ErrBackend marks transient failures of a collaborator backend.
var ErrBackend = errors.New("pipeline: backend unavailable")

// Command is one authenticated voice submission.
type Command struct {
	// Owner is the verified trader identity. Never taken from the audio.
	Owner string

	// Language the trader speaks, defaulting to English when unknown.
	Language lang.Language

	// Audio is the raw uploaded recording.
	Audio []byte
}

// Reply is the outcome of a submission. Text is always set, including on
// input errors; Audio is the spoken rendition as 16-bit PCM WAV and may be
// absent when synthesis is unavailable.
type Reply struct {
	Transcript string
	Intent     intent.Intent
	Records    []*ledger.Record
	Text       string
	Audio      []byte
}

// Orchestrator wires the pipeline stages together. Synthesizer may be nil,
// in which case replies are text only.
type Orchestrator struct {
	Normalizer  *normalize.Normalizer
	Transcriber speech.Transcriber
	Classifier  intent.Classifier
	Extractor   extract.Extractor
	Ledger      *ledger.Store
	Composer    *respond.Composer
	Synthesizer speech.Synthesizer
	Logger      *slog.Logger
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// SubmitVoiceCommand runs one voice command through the pipeline. On input
// errors the returned reply still carries the localized (and when possible,
// spoken) apology alongside an error wrapping ErrInput; backend failures
// wrap ErrBackend.
func (o *Orchestrator) SubmitVoiceCommand(ctx context.Context, cmd *Command) (*Reply, error) {
	language := cmd.Language
	if !language.Valid() {
		language = lang.English
	}
	log := o.logger().With("owner", cmd.Owner, "language", language)
	state := StateIdle
	advance := func(next State) {
		log.Debug("pipeline state", "from", state, "to", next)
		state = next
	}

	advance(StateNormalizing)
	staged, err := o.Normalizer.Normalize(cmd.Audio)
	if err != nil {
		if errors.Is(err, normalize.ErrBadAudio) {
			return o.fail(ctx, log, language, cmd.Owner, ErrInput, err)
		}
		return o.fail(ctx, log, language, cmd.Owner, ErrBackend, err)
	}
	defer staged.Release()

	advance(StateTranscribing)
	wavAudio, err := staged.WAV()
	if err != nil {
		return o.fail(ctx, log, language, cmd.Owner, ErrBackend, err)
	}
	transcript, err := o.Transcriber.Transcribe(ctx, wavAudio, language)
	if err != nil {
		return o.fail(ctx, log, language, cmd.Owner, ErrBackend, err)
	}
	staged.Release()
	if strings.TrimSpace(transcript) == "" {
		return o.fail(ctx, log, language, cmd.Owner, ErrInput, errors.New("empty transcript"))
	}
	reply := &Reply{Transcript: transcript}

	advance(StateClassifyingIntent)
	label, err := o.Classifier.Classify(ctx, transcript)
	if err != nil {
		return o.fail(ctx, log, language, cmd.Owner, ErrBackend, err)
	}
	reply.Intent = label

	switch label {
	case intent.LogTransaction:
		advance(StateLoggingTransaction)
		if err := o.logTransactions(ctx, cmd.Owner, transcript, language, reply); err != nil {
			return o.fail(ctx, log, language, cmd.Owner, kindOf(err), err)
		}

	case intent.QueryDebtors:
		advance(StateQueryingDebtors)
		records, err := o.Ledger.List(ctx, cmd.Owner)
		if err != nil {
			return o.fail(ctx, log, language, cmd.Owner, ErrBackend, err)
		}
		reply.Text = o.Composer.DebtorList(language, ledger.Debtors(records))

	case intent.QueryTotalIncome, intent.QueryTotalDebt:
		advance(StateQueryingAggregate)
		if err := o.queryAggregate(ctx, cmd.Owner, transcript, language, label, reply); err != nil {
			return o.fail(ctx, log, language, cmd.Owner, ErrBackend, err)
		}

	default:
		advance(StateRespondingCapabilities)
		reply.Text = o.Composer.Capabilities(language)
	}

	advance(StateComposingResponse)
	reply.Audio = o.synthesize(ctx, log, language, cmd.Owner, reply.Text)

	advance(StateDone)
	log.Info("voice command done", "intent", reply.Intent, "records", len(reply.Records))
	return reply, nil
}

// logTransactions extracts and persists the transactions of an utterance.
func (o *Orchestrator) logTransactions(ctx context.Context, owner, transcript string, language lang.Language, reply *Reply) error {
	parsed, err := o.Extractor.Extract(ctx, transcript, language)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}
	if len(parsed) == 0 {
		return fmt.Errorf("%w: no transaction in utterance", ErrInput)
	}
	records := make([]*ledger.Record, 0, len(parsed))
	for _, p := range parsed {
		rec := &ledger.Record{
			Owner:    owner,
			Customer: p.Customer,
			Details:  p.Details,
			Amount:   p.Amount,
			Type:     p.Type,
		}
		if err := o.Ledger.Append(ctx, rec); err != nil {
			return fmt.Errorf("%w: %v", ErrBackend, err)
		}
		records = append(records, rec)
	}
	reply.Records = records
	reply.Text = o.Composer.Confirmations(language, records)
	return nil
}

// queryAggregate answers a total-income or total-debt question, scoping to a
// single customer when the utterance names one the ledger knows.
func (o *Orchestrator) queryAggregate(ctx context.Context, owner, transcript string, language lang.Language, label intent.Intent, reply *Reply) error {
	records, err := o.Ledger.List(ctx, owner)
	if err != nil {
		return err
	}
	typ := ledger.TypeIncome
	if label == intent.QueryTotalDebt {
		typ = ledger.TypeDebt
	}
	customer := mentionedCustomer(transcript, records)
	scoped := records
	if customer != "" {
		scoped = ledger.FilterCustomer(records, customer)
	}
	reply.Text = o.Composer.Total(language, typ, customer, ledger.SumByType(scoped, typ))
	return nil
}

// mentionedCustomer returns the longest known customer name the transcript
// mentions, or "". Matching is diacritic- and case-insensitive.
func mentionedCustomer(transcript string, records []*ledger.Record) string {
	folded := numeral.Fold(transcript)
	var best string
	for _, rec := range records {
		if rec.Customer == "" || len(rec.Customer) <= len(best) {
			continue
		}
		if strings.Contains(folded, numeral.Fold(rec.Customer)) {
			best = rec.Customer
		}
	}
	return best
}

// synthesize renders text as WAV speech. Synthesis failures only cost the
// audio, never the reply.
func (o *Orchestrator) synthesize(ctx context.Context, log *slog.Logger, language lang.Language, owner, text string) []byte {
	if o.Synthesizer == nil || text == "" {
		return nil
	}
	data, format, err := o.Synthesizer.Synthesize(ctx, text, voice.Select(language, owner))
	if err != nil {
		log.Warn("speech synthesis failed", "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	return wav.Encode(data, format.SampleRate())
}

// fail composes the localized apology for kind and returns it with the
// wrapped cause. The apology still gets spoken audio when synthesis works;
// the TTS backend is its own collaborator and may be up when another is not.
func (o *Orchestrator) fail(ctx context.Context, log *slog.Logger, language lang.Language, owner string, kind, cause error) (*Reply, error) {
	log.Warn("voice command failed", "kind", kind, "error", cause)
	reply := &Reply{}
	if errors.Is(kind, ErrInput) || errors.Is(cause, ErrInput) {
		kind = ErrInput
		reply.Text = o.Composer.InputError(language)
	} else {
		kind = ErrBackend
		reply.Text = o.Composer.BackendError(language)
	}
	reply.Audio = o.synthesize(ctx, log, language, owner, reply.Text)
	if errors.Is(cause, kind) {
		return reply, cause
	}
	return reply, fmt.Errorf("%w: %v", kind, cause)
}

func kindOf(err error) error {
	if errors.Is(err, ErrInput) {
		return ErrInput
	}
	return ErrBackend
}

// ListTransactions returns the owner's records, oldest first.
func (o *Orchestrator) ListTransactions(ctx context.Context, owner string) ([]*ledger.Record, error) {
	return o.Ledger.List(ctx, owner)
}

// DeleteTransaction removes one record of the owner. Records of other
// owners report ledger.ErrNotFound.
func (o *Orchestrator) DeleteTransaction(ctx context.Context, owner, id string) error {
	return o.Ledger.Delete(ctx, owner, id)
}

// DeleteTransactionsOn removes the owner's records of one UTC calendar day
// and returns how many went.
func (o *Orchestrator) DeleteTransactionsOn(ctx context.Context, owner string, day time.Time) (int, error) {
	return o.Ledger.DeleteOn(ctx, owner, day)
}
