package journal

import (
	"time"
)

// Entry is one trade record in display form: tag fields are decoded
// sequences, the date is a calendar day, and pnl is numeric. The wire
// form exchanged with the backend lives in WireEntry.
type Entry struct {
	ID       string
	Date     *time.Time
	LTF      string
	HTF      string
	Bias     []string
	KillZone string
	Array    []string
	Results  []string
	PNL      float64

	Emotions            []string
	BeforeTradeEmotions []string
	InTradeEmotions     []string
	AfterTradeEmotions  []string

	Mistake string
	Reason  string

	// Server-assigned, read-only.
	CreatedAt string
	UpdatedAt string
}

// Field names an editable column of an Entry. The string value matches
// the backend's field name exactly so it can be used directly in PATCH
// payloads.
type Field string

const (
	FieldDate     Field = "date"
	FieldLTF      Field = "ltf"
	FieldHTF      Field = "htf"
	FieldBias     Field = "bias"
	FieldKillZone Field = "kill_zone"
	FieldArray    Field = "array"
	FieldResults  Field = "results"
	FieldPNL      Field = "pnl"
	FieldEmotions Field = "emotions"
	FieldBefore   Field = "before_trade_emotions"
	FieldInTrade  Field = "in_trade_emotions"
	FieldAfter    Field = "after_trade_emotions"
	FieldMistake  Field = "mistake"
	FieldReason   Field = "reason"
)

// Kind classifies how a field's value converts between wire and display
// representations.
type Kind int

const (
	KindText Kind = iota
	KindDate
	KindNumber
	KindTags
)

// Kind returns the conversion kind for the field. Unknown fields are
// treated as free text.
func (f Field) Kind() Kind {
	switch f {
	case FieldDate:
		return KindDate
	case FieldPNL:
		return KindNumber
	case FieldBias, FieldArray, FieldResults,
		FieldEmotions, FieldBefore, FieldInTrade, FieldAfter:
		return KindTags
	default:
		return KindText
	}
}

// Fields lists every editable field in table order.
var Fields = []Field{
	FieldDate, FieldLTF, FieldHTF, FieldBias, FieldKillZone,
	FieldArray, FieldResults, FieldPNL,
	FieldEmotions, FieldBefore, FieldInTrade, FieldAfter,
	FieldMistake, FieldReason,
}

// ParseField maps a backend field name to a Field.
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Fixed option vocabularies. These are static configuration: the editor
// offers them as choices but never validates stored values against them.
var (
	BiasOptions = []string{"buy", "sell"}

	ArrayOptions = []string{
		"FVG",
		"Asian High Low",
		"OB",
	}

	ResultsOptions = []string{
		"Win",
		"Loss",
		"Break Even",
		"Not Triggered",
		"Missed",
		"Monday",
		"News",
	}

	EmotionOptions = []string{
		"Confident",
		"Anxious",
		"Excited",
		"Fearful",
		"Greedy",
		"Patient",
		"Frustrated",
		"Calm",
		"Overconfident",
		"Disciplined",
		"FOMO",
		"Revenge Trading",
		"Neutral",
	}
)

// FieldValue returns the display-form value of the given field.
func (e *Entry) FieldValue(f Field) any {
	switch f {
	case FieldDate:
		return e.Date
	case FieldLTF:
		return e.LTF
	case FieldHTF:
		return e.HTF
	case FieldBias:
		return e.Bias
	case FieldKillZone:
		return e.KillZone
	case FieldArray:
		return e.Array
	case FieldResults:
		return e.Results
	case FieldPNL:
		return e.PNL
	case FieldEmotions:
		return e.Emotions
	case FieldBefore:
		return e.BeforeTradeEmotions
	case FieldInTrade:
		return e.InTradeEmotions
	case FieldAfter:
		return e.AfterTradeEmotions
	case FieldMistake:
		return e.Mistake
	case FieldReason:
		return e.Reason
	}
	return nil
}

// SetField applies a display-form value to the entry, coercing it with
// the codec rules for the field's kind. Invalid input degrades to the
// field's zero value rather than failing.
func (e *Entry) SetField(f Field, v any) {
	switch f {
	case FieldDate:
		e.Date = coerceDate(v)
	case FieldLTF:
		e.LTF = coerceText(v)
	case FieldHTF:
		e.HTF = coerceText(v)
	case FieldBias:
		e.Bias = coerceTags(v)
	case FieldKillZone:
		e.KillZone = coerceText(v)
	case FieldArray:
		e.Array = coerceTags(v)
	case FieldResults:
		e.Results = coerceTags(v)
	case FieldPNL:
		e.PNL = coerceNumber(v)
	case FieldEmotions:
		e.Emotions = coerceTags(v)
	case FieldBefore:
		e.BeforeTradeEmotions = coerceTags(v)
	case FieldInTrade:
		e.InTradeEmotions = coerceTags(v)
	case FieldAfter:
		e.AfterTradeEmotions = coerceTags(v)
	case FieldMistake:
		e.Mistake = coerceText(v)
	case FieldReason:
		e.Reason = coerceText(v)
	}
}

// PhaseEmotions returns the emotion tags to display for a phase-specific
// panel, falling back to the general Emotions value when the phase set is
// empty. The fallback is display-only: callers must never write its
// result back as the phase-specific value.
func (e *Entry) PhaseEmotions(f Field) []string {
	var phase []string
	switch f {
	case FieldBefore:
		phase = e.BeforeTradeEmotions
	case FieldInTrade:
		phase = e.InTradeEmotions
	case FieldAfter:
		phase = e.AfterTradeEmotions
	default:
		return e.Emotions
	}
	if len(phase) == 0 {
		return e.Emotions
	}
	return phase
}
