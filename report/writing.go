package report

import (
	"context"
	"fmt"

	ai "github.com/mwhitby/boardroom"
	"github.com/mwhitby/boardroom/graph"
)

// writingLead assigns the writing tasks. Like the research lead it runs
// both writers itself in concurrent mode and jumps to the compile step.
func (p *Pipeline) writingLead() graph.Handler {
	return graph.NewHandler(graph.WorkerWritingLead, func(ctx context.Context, snapshot graph.State) (graph.Update, error) {
		update := graph.Update{
			Messages: []ai.Message{ai.NewAssistantMessage(
				"📝 Writing Team Leader: Assigning tasks to Technical Writer and Summary Writer.")},
			Next: graph.WorkerTechnicalWriter,
		}
		if !p.concurrent {
			return update, nil
		}
		branches, err := graph.RunConcurrent(ctx, snapshot, p.technicalWriter(), p.summaryWriter())
		if err != nil {
			return graph.Update{}, err
		}
		for _, b := range branches {
			update.Messages = append(update.Messages, b.Messages...)
			update.Warnings = append(update.Warnings, b.Warnings...)
			update.Usage.Add(b.Usage)
			if b.TechnicalText != "" {
				update.TechnicalText = b.TechnicalText
			}
			if b.SummaryText != "" {
				update.SummaryText = b.SummaryText
			}
		}
		update.Next = graph.WorkerCompileReport
		return update, nil
	})
}

// technicalWriter produces the technical section from the merged research.
func (p *Pipeline) technicalWriter() graph.Handler {
	return graph.NewHandler(graph.WorkerTechnicalWriter, func(ctx context.Context, snapshot graph.State) (graph.Update, error) {
		resp, err := p.generate(ctx, fmt.Sprintf(technicalWriterPrompt, snapshot.CurrentTask, excerpt(snapshot.MergedResearch)))
		if err != nil {
			return graph.Update{}, &graph.GenerationError{Worker: graph.WorkerTechnicalWriter, TaskID: snapshot.TaskID, Err: err}
		}
		return graph.Update{
			Messages:      []ai.Message{ai.NewAssistantMessage("🧑‍💻 Technical Writer:\n" + preview(resp.Content))},
			TechnicalText: resp.Content,
			Next:          graph.WorkerSummaryWriter,
			Usage:         resp.Usage,
		}, nil
	})
}

// summaryWriter produces the executive summary from the merged research.
func (p *Pipeline) summaryWriter() graph.Handler {
	return graph.NewHandler(graph.WorkerSummaryWriter, func(ctx context.Context, snapshot graph.State) (graph.Update, error) {
		resp, err := p.generate(ctx, fmt.Sprintf(summaryWriterPrompt, snapshot.CurrentTask, excerpt(snapshot.MergedResearch)))
		if err != nil {
			return graph.Update{}, &graph.GenerationError{Worker: graph.WorkerSummaryWriter, TaskID: snapshot.TaskID, Err: err}
		}
		return graph.Update{
			Messages:    []ai.Message{ai.NewAssistantMessage("📝 Summary Writer:\n" + preview(resp.Content))},
			SummaryText: resp.Content,
			Next:        graph.WorkerCompileReport,
			Usage:       resp.Usage,
		}, nil
	})
}
