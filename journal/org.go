package journal

import (
	"fmt"
	"strings"
)

// FormatEntryOrg renders an entry as an Org-mode block suitable for
// pasting into a daily journal. Structured facts go in a PROPERTIES
// drawer for easy search; the free-text notes become narrative sections.
func FormatEntryOrg(e Entry) string {
	day := "no date"
	if e.Date != nil {
		day = FormatDate(e.Date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "** Trade %s (%s)\n", e.ID, day)
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", e.ID)
	fmt.Fprintf(&b, ":DATE: %s\n", day)
	fmt.Fprintf(&b, ":BIAS: %s\n", JoinTags(e.Bias))
	fmt.Fprintf(&b, ":KILL_ZONE: %s\n", e.KillZone)
	fmt.Fprintf(&b, ":ARRAY: %s\n", JoinTags(e.Array))
	fmt.Fprintf(&b, ":RESULTS: %s\n", JoinTags(e.Results))
	fmt.Fprintf(&b, ":PNL: %s\n", FormatNumber(e.PNL))
	fmt.Fprintf(&b, ":EMOTIONS: %s\n", JoinTags(e.Emotions))
	fmt.Fprintf(&b, ":BEFORE: %s\n", JoinTags(e.PhaseEmotions(FieldBefore)))
	fmt.Fprintf(&b, ":DURING: %s\n", JoinTags(e.PhaseEmotions(FieldInTrade)))
	fmt.Fprintf(&b, ":AFTER: %s\n", JoinTags(e.PhaseEmotions(FieldAfter)))
	fmt.Fprintf(&b, ":LTF: %s\n", e.LTF)
	fmt.Fprintf(&b, ":HTF: %s\n", e.HTF)
	b.WriteString(":END:\n")

	if e.Reason != "" {
		fmt.Fprintf(&b, "\n*** Reason\n%s\n", e.Reason)
	}
	if e.Mistake != "" {
		fmt.Fprintf(&b, "\n*** Mistake\n%s\n", e.Mistake)
	}

	return b.String()
}

// FormatEntriesOrg renders multiple entries separated by blank lines.
func FormatEntriesOrg(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatEntryOrg(e))
	}
	return b.String()
}
