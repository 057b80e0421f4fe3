// Command slurmfeatures inspects the installed Slurm headers and prints
// the build tags matching what the C API supports, space-joined so the
// output can be passed straight to go build:
//
//	go build -tags "$(go run ./tools/slurmfeatures)" ./...
//
// The C API has gained and lost fields over the years, so the bindings
// gate the affected interfaces behind these tags rather than pinning a
// single Slurm version.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

func main() {
	incdir := flag.String("incdir", "", "directory holding slurm/slurm.h (default: probe pkg-config, then /usr/include)")
	flag.Parse()

	dir, err := includeDir(*incdir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slurmfeatures: %v\n", err)
		os.Exit(1)
	}

	slurmH, err := os.ReadFile(filepath.Join(dir, "slurm", "slurm.h"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "slurmfeatures: %v\n", err)
		os.Exit(1)
	}
	slurmdbH, err := os.ReadFile(filepath.Join(dir, "slurm", "slurmdb.h"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "slurmfeatures: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Join(ScanFeatures(string(slurmH), string(slurmdbH)), " "))
}

// includeDir resolves where the Slurm headers live. Order: the -incdir
// flag, the SLURM_INCDIR environment variable, pkg-config, /usr/include.
func includeDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if dir := os.Getenv("SLURM_INCDIR"); dir != "" {
		return dir, nil
	}
	if dir, err := pkgConfigIncludeDir(); err == nil && dir != "" {
		return dir, nil
	}
	if _, err := os.Stat(filepath.Join("/usr/include", "slurm", "slurm.h")); err == nil {
		return "/usr/include", nil
	}
	return "", fmt.Errorf("cannot locate slurm/slurm.h; set SLURM_INCDIR or pass -incdir")
}

func pkgConfigIncludeDir() (string, error) {
	out, err := exec.Command("pkg-config", "--variable=includedir", "slurm").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ScanFeatures reports which gated C API features the given header
// contents support.
func ScanFeatures(slurmH, slurmdbH string) []string {
	var tags []string

	if body, ok := enumBody(slurmH, "job_states"); ok {
		if hasIdent(body, "JOB_DEADLINE") {
			tags = append(tags, "slurm_api_job_state_deadline")
		}
		if hasIdent(body, "JOB_OOM") {
			tags = append(tags, "slurm_api_job_state_oom")
		}
	}

	if body, ok := structBody(slurmdbH, "slurmdb_selected_step_t"); ok {
		if hasIdent(body, "pack_job_offset") {
			tags = append(tags, "slurm_api_selected_step_pack_job_offset")
		}
	}

	if body, ok := structBody(slurmH, "submit_response_msg"); ok {
		if hasIdent(body, "job_submit_user_msg") {
			tags = append(tags, "slurm_api_submit_response_user_message")
		}
	}

	return tags
}

// structBody extracts the body of the struct known by name, whether that
// name is the struct tag ("typedef struct name {") or the typedef name
// trailing the closing brace ("} name;"). Nested braces inside the body
// are tolerated.
func structBody(src, name string) (string, bool) {
	return blockBody(src, "struct", name)
}

// enumBody is structBody for enums.
func enumBody(src, name string) (string, bool) {
	return blockBody(src, "enum", name)
}

func blockBody(src, kind, name string) (string, bool) {
	lines := strings.Split(src, "\n")

	depth := 0
	var body []string
	tagged := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if depth == 0 {
			if !strings.Contains(trimmed, kind+" ") || !strings.Contains(trimmed, "{") {
				continue
			}
			// A block opens. Remember whether its tag already names it.
			tagged = hasIdent(trimmed, name)
			body = body[:0]
			depth = strings.Count(trimmed, "{") - strings.Count(trimmed, "}")
			continue
		}

		depth += strings.Count(trimmed, "{") - strings.Count(trimmed, "}")
		if depth > 0 {
			body = append(body, line)
			continue
		}

		// The block just closed. An anonymous typedef carries the name
		// on this closing line.
		if tagged || hasIdent(trimmed, name) {
			return strings.Join(body, "\n"), true
		}
	}

	return "", false
}

// hasIdent reports whether s contains ident as a whole word.
func hasIdent(s, ident string) bool {
	for start := 0; ; {
		i := strings.Index(s[start:], ident)
		if i < 0 {
			return false
		}
		i += start
		before := i == 0 || !identChar(s[i-1])
		afterIdx := i + len(ident)
		after := afterIdx >= len(s) || !identChar(s[afterIdx])
		if before && after {
			return true
		}
		start = i + len(ident)
	}
}

func identChar(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
