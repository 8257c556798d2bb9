package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/uuid"

	"github.com/gauransh/gitingest/internal/config"
	"github.com/gauransh/gitingest/internal/ingest"
	"github.com/gauransh/gitingest/internal/model"
	"github.com/gauransh/gitingest/internal/platform"
	"github.com/gauransh/gitingest/internal/scale"
)

// unsetSliderPosition marks -max-size as not given, letting the config file
// supply the default. Any real position is non-negative.
const unsetSliderPosition = -1

// multiFlag collects repeatable pattern flags.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}

func main() {
	var (
		output      string
		maxSize     int
		branch      string
		gitUsername string
		gitPAT      string
		serverURL   string
		auth        bool
		exclude     multiFlag
		include     multiFlag
	)

	flag.StringVar(&output, "output", "", "output file path (default: <repo_name>.txt)")
	flag.StringVar(&output, "o", "", "shorthand for -output")
	flag.IntVar(&maxSize, "max-size", unsetSliderPosition, "size-limit slider position (0-500, default from the config file)")
	flag.IntVar(&maxSize, "s", unsetSliderPosition, "shorthand for -max-size")
	flag.Var(&exclude, "exclude-pattern", "pattern to exclude (repeatable)")
	flag.Var(&exclude, "e", "shorthand for -exclude-pattern")
	flag.Var(&include, "include-pattern", "pattern to include (repeatable)")
	flag.Var(&include, "i", "shorthand for -include-pattern")
	flag.StringVar(&branch, "branch", "", "branch to ingest")
	flag.StringVar(&branch, "b", "", "shorthand for -branch")
	flag.StringVar(&gitUsername, "git-username", os.Getenv("GIT_USERNAME"), "git username for authentication")
	flag.StringVar(&gitPAT, "git-pat", os.Getenv("GIT_PAT"), "git personal access token for authentication")
	flag.StringVar(&serverURL, "server", "", "gitingest server base URL (overrides the config file)")
	flag.BoolVar(&auth, "auth", false, "prompt for missing git credentials")
	flag.Parse()

	source := flag.Arg(0)
	if source == "" {
		source = "."
	}

	err := run(source, output, maxSize, exclude, include, branch, gitUsername, gitPAT, serverURL, auth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(source, output string, maxSize int, exclude, include []string, branch, gitUsername, gitPAT, serverURL string, auth bool) error {
	cfg, err := config.LoadFileConfig(config.DefaultFileConfigPath())
	if err != nil {
		return err
	}
	if serverURL == "" {
		serverURL = cfg.ServerURL
	}

	if auth {
		if gitUsername == "" {
			if err := survey.AskOne(&survey.Input{Message: "Git username:"}, &gitUsername); err != nil {
				return err
			}
		}
		if gitPAT == "" {
			if err := survey.AskOne(&survey.Password{Message: "Personal access token:"}, &gitPAT); err != nil {
				return err
			}
		}
	}

	patternType, pattern := resolvePatterns(exclude, include)

	req := model.IngestRequest{
		ID:             uuid.NewString(),
		Source:         source,
		PatternType:    patternType,
		Pattern:        pattern,
		Branch:         branch,
		SliderPosition: resolveSliderPosition(maxSize, cfg),
		GitUsername:    gitUsername,
		GitPAT:         gitPAT,
	}

	client := ingest.NewClient(serverURL, 0)
	result, err := client.Submit(context.Background(), req)
	if err != nil {
		return err
	}

	if output == "" {
		dir := cfg.OutputDir
		if dir == "" {
			dir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}
		}
		output = filepath.Join(dir, platform.DigestFilename(source))
	}

	if err := platform.WriteDigestFile(output, result.Digest.Full()); err != nil {
		return err
	}

	fmt.Printf("Analysis complete! Output written to: %s\n", output)
	if result.Digest.Summary != "" {
		fmt.Printf("\nSummary:\n%s\n", result.Digest.Summary)
	}

	return nil
}

// resolveSliderPosition prefers an explicit -max-size flag over the config
// file's slider position. LoadFileConfig already clamps the config value.
func resolveSliderPosition(flagValue int, cfg *config.FileConfig) int {
	if flagValue == unsetSliderPosition {
		return cfg.SliderPosition
	}
	return scale.ClampPosition(flagValue)
}

// resolvePatterns maps the repeatable pattern flags onto the single
// pattern_type/pattern pair of the form contract. Include patterns take
// precedence when both are given, matching the form's single selector.
func resolvePatterns(exclude, include []string) (model.PatternType, string) {
	if len(include) > 0 {
		return model.PatternInclude, strings.Join(include, " ")
	}
	return model.PatternExclude, strings.Join(exclude, " ")
}
