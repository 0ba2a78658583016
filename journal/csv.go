package journal

import (
	"encoding/csv"
	"io"
)

var csvHeader = []string{
	"id", "date", "ltf", "htf", "bias", "kill_zone", "array", "results",
	"pnl", "emotions", "before_trade_emotions", "in_trade_emotions",
	"after_trade_emotions", "mistake", "reason", "created_at", "updated_at",
}

// WriteCSV writes entries as CSV using the wire encoding for every
// field, header row first.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, e := range entries {
		we := Encode(e)
		date := ""
		if we.Date != nil {
			date = *we.Date
		}
		err := cw.Write([]string{
			e.ID,
			date,
			we.LTF,
			we.HTF,
			we.Bias,
			we.KillZone,
			we.Array,
			we.Results,
			we.PNL,
			we.Emotions,
			we.BeforeTradeEmotions,
			we.InTradeEmotions,
			we.AfterTradeEmotions,
			we.Mistake,
			we.Reason,
			we.CreatedAt,
			we.UpdatedAt,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
