package report

import (
	"context"
	"fmt"

	ai "github.com/mwhitby/boardroom"
	"github.com/mwhitby/boardroom/graph"
)

const divider = "========================================================="

const reportTemplate = `📄 FINAL REPORT
%s
Generated: %s
Topic: %s
%s

**Technical Details:**
%s

**Executive Summary:**
%s

%s
Compiled by Multi-Agent AI System powered by %s
`

// compileReport assembles the final report, marks the task complete, and
// hands control back to the supervisor.
func (p *Pipeline) compileReport() graph.Handler {
	return graph.NewHandler(graph.WorkerCompileReport, func(ctx context.Context, snapshot graph.State) (graph.Update, error) {
		update := graph.Update{
			FinalReport: fmt.Sprintf(reportTemplate,
				divider,
				p.now().Format("2006-01-02 15:04"),
				snapshot.CurrentTask,
				divider,
				snapshot.TechnicalText,
				snapshot.SummaryText,
				divider,
				p.backend),
			TaskComplete: true,
			Next:         graph.WorkerSupervisor,
		}
		note := "✅ Writing Team Leader: Final report compiled."
		if snapshot.TechnicalText == "" {
			update.Warnings = append(update.Warnings, graph.Warning{
				Kind:    graph.WarnIncompleteInput,
				Worker:  graph.WorkerCompileReport,
				Message: "technical section is empty",
			})
			note = "⚠️ Writing Team Leader: Final report compiled with missing sections."
		}
		if snapshot.SummaryText == "" {
			update.Warnings = append(update.Warnings, graph.Warning{
				Kind:    graph.WarnIncompleteInput,
				Worker:  graph.WorkerCompileReport,
				Message: "executive summary is empty",
			})
			note = "⚠️ Writing Team Leader: Final report compiled with missing sections."
		}
		update.Messages = []ai.Message{ai.NewAssistantMessage(note)}
		return update, nil
	})
}
