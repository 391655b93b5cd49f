// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/office-convert/internal/formats"
)

// JobFile is the on-disk list of batches for the run command. Each job is
// converted in its own host session, in file order.
//
//	jobs:
//	  - family: text
//	    path: reports/
//	    from: .doc
//	    to: .pdf
//	  - family: spreadsheet
//	    path: ledger.xls
//	    from: .xls
//	    code: 51
type JobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// Job is one batch in a JobFile.
type Job struct {
	Family string `yaml:"family"`
	Path   string `yaml:"path"`
	From   string `yaml:"from"`
	To     string `yaml:"to,omitempty"`
	Code   *int   `yaml:"code,omitempty"`
}

// Request validates the job and converts it into a family and request.
func (j Job) Request() (formats.Family, Request, error) {
	family, err := formats.ParseFamily(j.Family)
	if err != nil {
		return "", Request{}, err
	}
	if j.Path == "" {
		return "", Request{}, fmt.Errorf("path is required")
	}
	if j.From == "" {
		return "", Request{}, fmt.Errorf("from is required")
	}
	if j.To == "" && j.Code == nil {
		return "", Request{}, fmt.Errorf("to or code is required")
	}

	req := Request{Path: j.Path, From: j.From, To: j.To}
	if j.Code != nil {
		code := formats.Code(*j.Code)
		req.Code = &code
	}
	return family, req, nil
}

// ReadJobFile loads a job file from disk and validates every job.
func ReadJobFile(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	for i, j := range jf.Jobs {
		if _, _, err := j.Request(); err != nil {
			return nil, fmt.Errorf("job %d in %s: %w", i+1, path, err)
		}
	}
	return &jf, nil
}

// WriteJobFile saves a job file to disk.
func WriteJobFile(path string, jf *JobFile) error {
	data, err := yaml.Marshal(jf)
	if err != nil {
		return fmt.Errorf("marshaling job file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PresetJobs returns a job file with one job per preset, each converting
// the files under path.
func PresetJobs(path string) *JobFile {
	jf := &JobFile{Jobs: make([]Job, 0, len(Presets))}
	for _, p := range Presets {
		code := int(p.Code)
		jf.Jobs = append(jf.Jobs, Job{Family: string(p.Family), Path: path, From: p.From, Code: &code})
	}
	return jf
}

// RunJobs converts every job in order and stops at the first failure.
// Results of the jobs that ran are returned either way.
func (d *Driver) RunJobs(jf *JobFile) ([]BatchResult, error) {
	results := make([]BatchResult, 0, len(jf.Jobs))
	for i, j := range jf.Jobs {
		family, req, err := j.Request()
		if err != nil {
			return results, fmt.Errorf("job %d: %w", i+1, err)
		}
		fmt.Fprintf(d.Out, "job %d/%d: %s %s (%s -> %s)\n", i+1, len(jf.Jobs), family, req.Path, req.From, jobTarget(req))
		res, err := d.Convert(family, req)
		if err != nil {
			return results, fmt.Errorf("job %d: %w", i+1, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func jobTarget(req Request) string {
	if req.Code != nil {
		return fmt.Sprintf("format %d", *req.Code)
	}
	return req.To
}
