package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/jubeesync/internal/models"
)

// maxValueWidth ограничивает длину значения поля в таблице
const maxValueWidth = 40

// conflictView - конфликт вместе с рекомендацией для вывода в JSON
type conflictView struct {
	models.ConflictGroup
	Recommended models.ResolutionChoice `json:"recommended"`
}

func (c *Cli) runConflicts(asJSON bool) error {
	conflicts := c.syncService.GetConflicts()
	diagnosis := c.syncService.GetDiagnosis()

	if asJSON {
		views := make([]conflictView, 0, len(conflicts))
		for _, g := range conflicts {
			views = append(views, conflictView{ConflictGroup: g, Recommended: diagnosis[g.ID]})
		}
		enc := json.NewEncoder(c.io)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	if len(conflicts) == 0 {
		c.io.Success("No pending conflicts")
		return nil
	}

	c.io.Printf("%d pending conflict(s)\n\n", len(conflicts))

	for _, g := range conflicts {
		label := g.RecordLabel
		if label == "" {
			label = g.ID
		}
		c.io.Printf("[%s] %s  (id %s, detected %s)\n", g.Collection, label, g.ID, g.DetectedAt.Format(time.DateTime))
		for _, f := range g.Conflicts {
			c.io.Printf("    %-20s local: %-*s  server: %s\n",
				f.Field,
				maxValueWidth, formatValue(f.LocalValue, f.LocalUnset),
				formatValue(f.ServerValue, f.ServerUnset))
		}
		c.io.Printf("    recommended: %s\n\n", diagnosis[g.ID])
	}

	c.io.Println("Use 'jubee resolve <local|server|merge> <id>...' or 'jubee accept-diagnosis'.")
	return nil
}

func formatValue(v any, unset bool) string {
	if unset {
		return "<unset>"
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	runes := []rune(string(data))
	if len(runes) > maxValueWidth {
		return string(runes[:maxValueWidth-3]) + "..."
	}
	return string(runes)
}
