// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	apps := []string{
		"seqlab/internal/appcore", "seqlab/internal/app", "seqlab/internal/orfapp",
		"seqlab/internal/cli", "seqlab/internal/orfcli", "seqlab/cmd/",
	}
	bans := map[string][]string{
		"seqlab/internal/pipeline": append([]string{"seqlab/internal/writers", "seqlab/internal/output"}, apps...),
		"seqlab/internal/writers":  append([]string{"seqlab/internal/pipeline"}, apps...),
		"seqlab/internal/output":   append([]string{"seqlab/internal/pipeline", "seqlab/internal/writers"}, apps...),
		"seqlab/internal/pretty":   append([]string{"seqlab/internal/pipeline", "seqlab/internal/writers"}, apps...),
		"seqlab/internal/visitors": append([]string{"seqlab/internal/writers"}, apps...),
		"seqlab/pkg/api":           {"seqlab/internal/", "seqlab/cmd/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "seqlab/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix && !strings.HasPrefix(imp, prefix+"/") {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "seqlab/") {
					continue
				}
				for _, ban := range forbidden {
					if dep == ban || strings.HasPrefix(dep, strings.TrimSuffix(ban, "/")+"/") {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
