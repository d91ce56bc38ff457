// Package pipe composes functions left to right (Pipe) and right to left
// (Compose).
//
// A step that panics, or under PipeE returns an error, stops the pipe and is
// reported as a *PipeError carrying the step's name and index and the
// original error:
//
//	_, err := pipe.Pipe(" 42 ", strings.TrimSpace, mustParse)
//	var pe *pipe.PipeError
//	if errors.As(err, &pe) {
//		log.Error(pe.Source, "step failed", "step", pe.Name, "index", pe.Index)
//	}
package pipe
