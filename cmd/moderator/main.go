package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/code-payments/content-moderator/config"
	"github.com/code-payments/content-moderator/moderation"
	"github.com/code-payments/content-moderator/moderation/azure"
)

const usage = `usage: moderator [-env file] [-debug] <command> [flags]

commands:
  text      [-type plain|html|xml|markdown] [-lang auto|<code>] [-file path | text...]
  language  [-type plain|html|xml|markdown] [-file path | text...]
  image     <path>
`

var errUsage = errors.New("invalid usage")

func main() {
	var (
		envFile = flag.String("env", "", "env file to load instead of .env")
		debug   = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	log := zap.Must(zap.NewProduction())
	if *debug {
		log = zap.Must(zap.NewDevelopment())
	}
	defer log.Sync()

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}

	client, err := azure.FromConfig(cfg)
	if err != nil {
		log.Fatal("Failed to create moderation client", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc := moderation.NewService(log, client)
	if err := run(ctx, svc, flag.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		log.Error("Command failed", zap.Error(err))
		stop()
		log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, svc *moderation.Service, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	var (
		result any
		err    error
	)
	switch args[0] {
	case "text":
		result, err = runText(ctx, svc, args[1:])
	case "language":
		result, err = runLanguage(ctx, svc, args[1:])
	case "image":
		result, err = runImage(ctx, svc, args[1:])
	default:
		return errors.Wrapf(errUsage, "unknown command %q", args[0])
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

type textFlags struct {
	fs       *flag.FlagSet
	textType string
	file     string
}

func newTextFlags(name string) *textFlags {
	f := &textFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.SetOutput(io.Discard)
	f.fs.StringVar(&f.textType, "type", "plain", "text type: plain, html, xml or markdown")
	f.fs.StringVar(&f.file, "file", "", "read the text from a file")
	return f
}

func (f *textFlags) parse(args []string) (string, moderation.TextType, error) {
	if err := f.fs.Parse(args); err != nil {
		return "", 0, errors.Wrap(errUsage, err.Error())
	}

	textType, err := moderation.ParseTextType(f.textType)
	if err != nil {
		return "", 0, errors.Wrap(errUsage, err.Error())
	}

	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return "", 0, errors.Wrap(err, "failed to read text file")
		}
		return string(data), textType, nil
	}

	if f.fs.NArg() == 0 {
		return "", 0, errors.Wrap(errUsage, "no text given")
	}
	return strings.Join(f.fs.Args(), " "), textType, nil
}

func runText(ctx context.Context, svc *moderation.Service, args []string) (*moderation.AnalyzeTextResult, error) {
	f := newTextFlags("text")
	lang := f.fs.String("lang", moderation.AutoDetectLanguage, "language code, or auto to detect it")

	text, textType, err := f.parse(args)
	if err != nil {
		return nil, err
	}
	if err := checkLanguage(*lang); err != nil {
		return nil, err
	}

	return svc.AnalyzeText(ctx, text, textType, *lang)
}

func runLanguage(ctx context.Context, svc *moderation.Service, args []string) (map[string]string, error) {
	text, textType, err := newTextFlags("language").parse(args)
	if err != nil {
		return nil, err
	}

	detected, err := svc.DetectLanguage(ctx, text, textType)
	if err != nil {
		return nil, err
	}
	return map[string]string{"DetectedLanguage": detected}, nil
}

func runImage(ctx context.Context, svc *moderation.Service, args []string) (*moderation.Evaluation, error) {
	if len(args) != 1 {
		return nil, errors.Wrap(errUsage, "expected exactly one image path")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image file")
	}
	return svc.AnalyzeImage(ctx, data)
}

// checkLanguage rejects language codes that are not well-formed tags. The
// code itself is sent unmodified.
func checkLanguage(lang string) error {
	if lang == moderation.AutoDetectLanguage {
		return nil
	}
	if _, err := language.Parse(lang); err != nil {
		return errors.Wrapf(errUsage, "invalid language %q: %v", lang, err)
	}
	return nil
}
