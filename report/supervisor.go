package report

import (
	"context"

	ai "github.com/mwhitby/boardroom"
	"github.com/mwhitby/boardroom/graph"
)

// supervisor inspects accumulated state and delegates to the next team.
// It never calls the backend and never mutates report data.
func (p *Pipeline) supervisor() graph.Handler {
	return graph.NewHandler(graph.WorkerSupervisor, func(ctx context.Context, snapshot graph.State) (graph.Update, error) {
		switch {
		case snapshot.MergedResearch == "":
			return graph.Update{
				Messages: []ai.Message{ai.NewAssistantMessage("🧑‍💼 CEO: Let's start research. Handing off to Research Team Leader.")},
				Next:     graph.WorkerResearchLead,
			}, nil
		case snapshot.TechnicalText == "" || snapshot.SummaryText == "":
			return graph.Update{
				Messages: []ai.Message{ai.NewAssistantMessage("🧑‍💼 CEO: Research complete. Handing off to Writing Team Leader.")},
				Next:     graph.WorkerWritingLead,
			}, nil
		default:
			return graph.Update{
				Messages: []ai.Message{ai.NewAssistantMessage("🧑‍💼 CEO: All tasks complete. Great job team!")},
				Next:     graph.Terminal,
			}, nil
		}
	})
}
