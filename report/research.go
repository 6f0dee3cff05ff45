package report

import (
	"context"
	"fmt"

	ai "github.com/mwhitby/boardroom"
	"github.com/mwhitby/boardroom/graph"
)

// researchLead announces the research split. In sequential mode it hands
// off to the data researcher; in concurrent mode it runs both researchers
// itself and jumps straight to the merge step.
func (p *Pipeline) researchLead() graph.Handler {
	return graph.NewHandler(graph.WorkerResearchLead, func(ctx context.Context, snapshot graph.State) (graph.Update, error) {
		update := graph.Update{
			Messages: []ai.Message{ai.NewAssistantMessage(fmt.Sprintf(
				"📋 Research Team Leader:\nSplitting research task:\n- Data Researcher → factual data\n- Market Researcher → market trends\nTask: %s",
				snapshot.CurrentTask))},
			Next: graph.WorkerDataResearcher,
		}
		if !p.concurrent {
			return update, nil
		}
		branches, err := graph.RunConcurrent(ctx, snapshot, p.dataResearcher(), p.marketResearcher())
		if err != nil {
			return graph.Update{}, err
		}
		for _, b := range branches {
			update.Messages = append(update.Messages, b.Messages...)
			update.Warnings = append(update.Warnings, b.Warnings...)
			update.Usage.Add(b.Usage)
			if b.ResearchData != "" {
				update.ResearchData = b.ResearchData
			}
			if b.MarketData != "" {
				update.MarketData = b.MarketData
			}
		}
		update.Next = graph.WorkerMergeResearch
		return update, nil
	})
}

// dataResearcher gathers factual data and statistics for the task.
func (p *Pipeline) dataResearcher() graph.Handler {
	return graph.NewHandler(graph.WorkerDataResearcher, func(ctx context.Context, snapshot graph.State) (graph.Update, error) {
		resp, err := p.generate(ctx, fmt.Sprintf(dataResearcherPrompt, snapshot.CurrentTask))
		if err != nil {
			return graph.Update{}, &graph.GenerationError{Worker: graph.WorkerDataResearcher, TaskID: snapshot.TaskID, Err: err}
		}
		return graph.Update{
			Messages:     []ai.Message{ai.NewAssistantMessage("🔎 Data Researcher:\n" + preview(resp.Content))},
			ResearchData: resp.Content,
			Next:         graph.WorkerMarketResearcher,
			Usage:        resp.Usage,
		}, nil
	})
}

// marketResearcher analyzes market trends and business implications.
func (p *Pipeline) marketResearcher() graph.Handler {
	return graph.NewHandler(graph.WorkerMarketResearcher, func(ctx context.Context, snapshot graph.State) (graph.Update, error) {
		resp, err := p.generate(ctx, fmt.Sprintf(marketResearcherPrompt, snapshot.CurrentTask))
		if err != nil {
			return graph.Update{}, &graph.GenerationError{Worker: graph.WorkerMarketResearcher, TaskID: snapshot.TaskID, Err: err}
		}
		return graph.Update{
			Messages:   []ai.Message{ai.NewAssistantMessage("📈 Market Researcher:\n" + preview(resp.Content))},
			MarketData: resp.Content,
			Next:       graph.WorkerMergeResearch,
			Usage:      resp.Usage,
		}, nil
	})
}

// mergeResearch joins both research streams into one labeled document.
// Missing inputs degrade the run with a warning rather than failing it.
func (p *Pipeline) mergeResearch() graph.Handler {
	return graph.NewHandler(graph.WorkerMergeResearch, func(ctx context.Context, snapshot graph.State) (graph.Update, error) {
		update := graph.Update{
			MergedResearch: fmt.Sprintf("**DATA RESEARCH:**\n%s\n\n**MARKET RESEARCH:**\n%s",
				snapshot.ResearchData, snapshot.MarketData),
			Next: graph.WorkerSupervisor,
		}
		note := "✅ Research Team Leader: Merged research data."
		if snapshot.ResearchData == "" {
			update.Warnings = append(update.Warnings, graph.Warning{
				Kind:    graph.WarnIncompleteInput,
				Worker:  graph.WorkerMergeResearch,
				Message: "data research is empty",
			})
			note = "⚠️ Research Team Leader: Merged research data (data research missing)."
		}
		if snapshot.MarketData == "" {
			update.Warnings = append(update.Warnings, graph.Warning{
				Kind:    graph.WarnIncompleteInput,
				Worker:  graph.WorkerMergeResearch,
				Message: "market research is empty",
			})
			note = "⚠️ Research Team Leader: Merged research data (market research missing)."
		}
		update.Messages = []ai.Message{ai.NewAssistantMessage(note)}
		return update, nil
	})
}
