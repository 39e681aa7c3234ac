package testutil

import "github.com/arthur-debert/clangfmt/pkg/types"

// Recorder is an output.Reporter that keeps every call
type Recorder struct {
	Statuses     []string
	Infos        []string
	AlteredPaths []string
	Result       *types.RunResult
}

func (r *Recorder) Status(text string)         { r.Statuses = append(r.Statuses, text) }
func (r *Recorder) Info(text string)           { r.Infos = append(r.Infos, text) }
func (r *Recorder) Altered(displayPath string) { r.AlteredPaths = append(r.AlteredPaths, displayPath) }
func (r *Recorder) Done(res *types.RunResult)  { r.Result = res }
