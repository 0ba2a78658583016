package journal

import (
	"strconv"
	"time"
)

// WireEntry is the REST representation of an entry: tag fields as
// comma-joined strings, pnl as a decimal string, date as YYYY-MM-DD or
// null, and a numeric id. Both the API client and the reference server
// speak this shape.
type WireEntry struct {
	ID                  int64   `json:"id"`
	Date                *string `json:"date"`
	LTF                 string  `json:"ltf"`
	HTF                 string  `json:"htf"`
	Bias                string  `json:"bias"`
	KillZone            string  `json:"kill_zone"`
	Array               string  `json:"array"`
	Results             string  `json:"results"`
	PNL                 string  `json:"pnl"`
	Emotions            string  `json:"emotions"`
	BeforeTradeEmotions string  `json:"before_trade_emotions"`
	InTradeEmotions     string  `json:"in_trade_emotions"`
	AfterTradeEmotions  string  `json:"after_trade_emotions"`
	Mistake             string  `json:"mistake"`
	Reason              string  `json:"reason"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

// Decode converts the wire entry into display form.
func (w WireEntry) Decode() Entry {
	var date *time.Time
	if w.Date != nil {
		date = ParseDate(*w.Date)
	}
	return Entry{
		ID:                  strconv.FormatInt(w.ID, 10),
		Date:                date,
		LTF:                 w.LTF,
		HTF:                 w.HTF,
		Bias:                SplitTags(w.Bias),
		KillZone:            w.KillZone,
		Array:               SplitTags(w.Array),
		Results:             SplitTags(w.Results),
		PNL:                 ParseNumber(w.PNL),
		Emotions:            SplitTags(w.Emotions),
		BeforeTradeEmotions: SplitTags(w.BeforeTradeEmotions),
		InTradeEmotions:     SplitTags(w.InTradeEmotions),
		AfterTradeEmotions:  SplitTags(w.AfterTradeEmotions),
		Mistake:             w.Mistake,
		Reason:              w.Reason,
		CreatedAt:           w.CreatedAt,
		UpdatedAt:           w.UpdatedAt,
	}
}

// Encode converts a display entry into wire form. The id is parsed back
// to its numeric canonical form; a non-numeric id encodes as 0.
func Encode(e Entry) WireEntry {
	id, _ := strconv.ParseInt(e.ID, 10, 64)
	var date *string
	if e.Date != nil {
		s := FormatDate(e.Date)
		date = &s
	}
	return WireEntry{
		ID:                  id,
		Date:                date,
		LTF:                 e.LTF,
		HTF:                 e.HTF,
		Bias:                JoinTags(e.Bias),
		KillZone:            e.KillZone,
		Array:               JoinTags(e.Array),
		Results:             JoinTags(e.Results),
		PNL:                 FormatNumber(e.PNL),
		Emotions:            JoinTags(e.Emotions),
		BeforeTradeEmotions: JoinTags(e.BeforeTradeEmotions),
		InTradeEmotions:     JoinTags(e.InTradeEmotions),
		AfterTradeEmotions:  JoinTags(e.AfterTradeEmotions),
		Mistake:             e.Mistake,
		Reason:              e.Reason,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

// DefaultWire returns the wire payload for a freshly created entry:
// null date, zero pnl, everything else empty. The server assigns id and
// timestamps.
func DefaultWire() WireEntry {
	return WireEntry{PNL: "0"}
}
