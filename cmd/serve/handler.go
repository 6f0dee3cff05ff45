package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	aguievents "github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	"github.com/mwhitby/boardroom/agui"
	"github.com/mwhitby/boardroom/client"
	"github.com/mwhitby/boardroom/graph"
	"github.com/mwhitby/boardroom/report"
)

// ReportHandler serves report generation requests.
type ReportHandler struct {
	client *client.Client
}

// NewReportHandler creates a handler backed by the given client.
func NewReportHandler(c *client.Client) *ReportHandler {
	return &ReportHandler{client: c}
}

type reportRequest struct {
	Task     string `json:"task"`
	Parallel bool   `json:"parallel,omitempty"`
}

type reportResponse struct {
	TaskID   string   `json:"task_id"`
	Report   string   `json:"report"`
	Steps    int      `json:"steps"`
	Degraded bool     `json:"degraded"`
	Warnings []string `json:"warnings,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *ReportHandler) pipeline(req reportRequest) *report.Pipeline {
	opts := []report.Option{report.WithBackendName(h.client.Name())}
	if req.Parallel {
		opts = append(opts, report.WithConcurrentTeams())
	}
	return report.New(h.client, opts...)
}

// Report runs the pipeline to completion and returns the result as JSON.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.Task == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "task must not be empty"})
		return
	}

	engine, err := h.pipeline(req).Engine()
	if err != nil {
		slog.Error("engine setup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	result, err := engine.Run(r.Context(), req.Task)
	if err != nil {
		slog.Error("run failed", "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	log := slog.With("task_id", result.State.TaskID)
	log.Info("run complete",
		"steps", result.Steps,
		"degraded", result.Degraded(),
		"input_tokens", result.Usage.InputTokens,
		"output_tokens", result.Usage.OutputTokens,
		"duration", time.Since(start),
	)

	resp := reportResponse{
		TaskID:   result.State.TaskID,
		Report:   result.State.FinalReport,
		Steps:    result.Steps,
		Degraded: result.Degraded(),
	}
	for _, warn := range result.Warnings {
		resp.Warnings = append(resp.Warnings, warn.String())
	}
	writeJSON(w, http.StatusOK, resp)
}

// Stream runs the pipeline while streaming AG-UI events over SSE.
func (h *ReportHandler) Stream(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("invalid request body", "error", err)
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Task == "" {
		http.Error(w, "task must not be empty", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		slog.Error("streaming not supported")
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	reporter := graph.NewReporter()
	engine, err := h.pipeline(req).Engine(graph.WithReporter(reporter))
	if err != nil {
		slog.Error("engine setup failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	mapper := agui.NewMapper("", "")
	log := slog.With("run_id", mapper.RunID())

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer reporter.Close()
		if _, err := engine.Run(r.Context(), req.Task); err != nil {
			log.Error("run failed", "error", err)
		}
	}()

	for ev := range reporter.Events() {
		for _, aguiEvent := range mapper.MapEvent(ev) {
			if err := writeSSE(w, flusher, aguiEvent); err != nil {
				log.Error("failed to write SSE event", "error", err, "event_type", aguiEvent.Type())
				<-done
				return
			}
		}
	}
	<-done

	log.Info("stream complete")
}

func writeSSE(w http.ResponseWriter, flusher http.Flusher, ev aguievents.Event) error {
	data, err := ev.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}

	// SSE format: event: TYPE\ndata: {json}\n\n
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type(), string(data)); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	flusher.Flush()
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
