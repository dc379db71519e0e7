package invoicelib

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rezonia/invoice-renderer/internal/format"
	"github.com/rezonia/invoice-renderer/internal/model"
	"github.com/rezonia/invoice-renderer/internal/parser"
	"github.com/rezonia/invoice-renderer/internal/render"
	"github.com/rezonia/invoice-renderer/internal/snapshot"
)

// Options configures a Renderer
type Options struct {
	// Formatting
	Convention string // Number grouping: en-US, en-IN or de-DE (default: en-US)
	DateLayout string // Go time layout (default: "January 2, 2006")

	// DefaultTemplate is used by Render when no template is named
	DefaultTemplate TemplateID

	// Concurrency bounds RenderBatch (default: number of CPUs)
	Concurrency int
}

// DefaultOptions returns default renderer options
func DefaultOptions() Options {
	return Options{
		Convention:      string(format.ConventionUS),
		DateLayout:      format.DefaultDateLayout,
		DefaultTemplate: render.DefaultTemplate,
		Concurrency:     runtime.NumCPU(),
	}
}

// TemplateInfo describes an available template
type TemplateInfo struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

// Renderer computes snapshots and renders them
type Renderer struct {
	renderer *render.Renderer
	decoders *parser.Registry
	options  Options
}

// NewRenderer creates a renderer with the given options. An unsupported
// convention falls back to en-US.
func NewRenderer(opts Options) *Renderer {
	formatOpts := format.DefaultOptions()
	if conv, err := format.ParseConvention(opts.Convention); err == nil {
		formatOpts.Convention = conv
	}
	if opts.DateLayout != "" {
		formatOpts.DateLayout = opts.DateLayout
	}
	if opts.DefaultTemplate == "" {
		opts.DefaultTemplate = render.DefaultTemplate
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.NumCPU()
	}

	return &Renderer{
		renderer: render.NewRenderer(render.WithOptions(formatOpts)),
		decoders: parser.NewRegistry(),
		options:  opts,
	}
}

// NewDefaultRenderer creates a renderer with default options
func NewDefaultRenderer() *Renderer {
	return NewRenderer(DefaultOptions())
}

// Compute validates input and returns a snapshot with derived totals
func (r *Renderer) Compute(input *Input) (*Snapshot, error) {
	return snapshot.Assemble(input)
}

// ComputeJSON decodes a JSON payload and computes its snapshot
func (r *Renderer) ComputeJSON(data []byte) (*Snapshot, error) {
	return snapshot.FromJSON(data)
}

// Decode parses a JSON or XML payload, detected from its first byte
func (r *Renderer) Decode(data []byte) (*Input, error) {
	return r.decoders.Decode(data)
}

// ComputeData decodes a JSON or XML payload and computes its snapshot
func (r *Renderer) ComputeData(data []byte) (*Snapshot, error) {
	input, err := r.Decode(data)
	if err != nil {
		return nil, err
	}
	return r.Compute(input)
}

// Validate reports every problem with input without computing totals
func (r *Renderer) Validate(input *Input) error {
	return snapshot.Validate(input)
}

// Render lays out snap with template id, or the default template when id
// is empty
func (r *Renderer) Render(id TemplateID, snap *Snapshot) (*Document, error) {
	if id == "" {
		id = r.options.DefaultTemplate
	}
	return r.renderer.Render(id, snap)
}

// RenderJSON computes and renders a JSON payload in one step
func (r *Renderer) RenderJSON(id TemplateID, data []byte) (*Document, error) {
	snap, err := r.ComputeJSON(data)
	if err != nil {
		return nil, err
	}
	return r.Render(id, snap)
}

// RenderAll renders snap with every available template
func (r *Renderer) RenderAll(snap *Snapshot) ([]*Document, error) {
	return r.renderer.RenderAll(snap)
}

// Templates lists the available templates
func (r *Renderer) Templates() []TemplateInfo {
	templates := r.renderer.Registry().Templates()
	out := make([]TemplateInfo, 0, len(templates))
	for _, t := range templates {
		out = append(out, TemplateInfo{ID: t.ID(), Name: t.Name(), Description: t.Description()})
	}
	return out
}

// Job is one unit of batch work. Exactly one of Input or Data is used;
// Input wins when both are set. Data may be JSON or XML. An empty Template computes totals only.
type Job struct {
	Name     string
	Input    *Input
	Data     []byte
	Template TemplateID
}

// Result is the outcome of a Job
type Result struct {
	Name     string
	Snapshot *Snapshot
	Document *Document
	Err      error
}

// RenderBatch runs independent jobs concurrently. Results are returned in
// job order and every job gets a result; the error is the first job error
// encountered. Jobs not yet started when ctx is done fail with ctx.Err().
func (r *Renderer) RenderBatch(ctx context.Context, jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	var g errgroup.Group
	g.SetLimit(r.options.Concurrency)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			result := &Result{Name: job.Name}
			results[i] = result

			if err := ctx.Err(); err != nil {
				result.Err = err
				return err
			}

			result.Snapshot, result.Document, result.Err = r.runJob(job)
			return result.Err
		})
	}

	return results, g.Wait()
}

func (r *Renderer) runJob(job Job) (*Snapshot, *Document, error) {
	var (
		snap *model.Snapshot
		err  error
	)
	if job.Input != nil {
		snap, err = r.Compute(job.Input)
	} else {
		snap, err = r.ComputeData(job.Data)
	}
	if err != nil {
		return nil, nil, err
	}

	if job.Template == "" {
		return snap, nil, nil
	}

	doc, err := r.renderer.Render(job.Template, snap)
	if err != nil {
		return snap, nil, err
	}
	return snap, doc, nil
}
