package main

import (
	"errors"
	"io"
	"os"

	"ditto.co.jp/filecopier/swap"
	"ditto.co.jp/filecopier/utils"
	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/afero"
)

const version = "filecopier v0.1.0"

//options -
type options struct {
	Database  string `short:"d" value-name:"name" description:"record copied files in the database <name>"`
	FailStop  int    `short:"e" value-name:"number" description:"stop after this many consecutive copy errors (0 = never)"`
	Config    string `short:"c" long:"config" value-name:"file" description:"ini configuration file"`
	Algorithm string `short:"a" long:"algorithm" value-name:"md5|blake3" description:"content hash algorithm"`
	Exif      bool   `short:"x" long:"exif" description:"name images by their EXIF capture time"`
	Version   bool   `short:"v" long:"version" description:"show version"`

	Source string
	Target string
}

//parseOptions - help is reported as a *flags.Error of type flags.ErrHelp
func parseOptions(args []string) (*options, *flags.Parser, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "filecopier"
	parser.Usage = "[OPTIONS] <SOURCE_DIR> <TARGET_DIR>"

	//help wins over anything else on the line, even arguments go-flags rejects
	if wantsHelp(args) {
		return nil, parser, &flags.Error{Type: flags.ErrHelp, Message: "help requested"}
	}

	cmds, err := parser.ParseArgs(args)
	if err != nil {
		return nil, parser, err
	}
	if opts.Version {
		return &opts, parser, nil
	}
	//the last two positionals are source and target
	if len(cmds) < 2 {
		return nil, parser, &utils.ConfigError{Msg: "source and target directories are required"}
	}
	opts.Source = cmds[len(cmds)-2]
	opts.Target = cmds[len(cmds)-1]

	return &opts, parser, nil
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "--help", "-h":
			return true
		}
	}
	return false
}

func isHelp(err error) bool {
	var ferr *flags.Error
	return errors.As(err, &ferr) && ferr.Type == flags.ErrHelp
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

//run - executes one copy and returns the exit code
func run(args []string, stdout io.Writer) int {
	report := utils.NewReporter(stdout)

	opts, parser, err := parseOptions(args)
	if err != nil {
		if isHelp(err) {
			parser.WriteHelp(stdout)
			return 0
		}
		report.Errorf("%v", err)
		parser.WriteHelp(stdout)
		return 1
	}
	if opts.Version {
		report.Println(version)
		return 0
	}

	cfg, err := loadConfig(opts, parser)
	if err != nil {
		report.Errorf("%v", err)
		return 1
	}

	if !utils.Exists(opts.Source) {
		report.Errorf("%v not found.", opts.Source)
		return 1
	}

	var store *swap.Store
	if opts.Database != "" {
		path := cfg.DBPath(opts.Database)
		report.Infof("dbfile: %v", path)
		store, err = swap.Open(path)
		if err != nil {
			report.Errorf("failed to create database: %v", err)
			return 1
		}
		defer store.Close()
		report.Infof("DATABASE: %v", opts.Database)
	}

	report.Infof("SOURCE: %v", opts.Source)
	report.Infof("TARGET: %v", opts.Target)
	if err := os.MkdirAll(opts.Target, 0755); err != nil {
		report.Errorf("failed to create target directory: %v", err)
		return 1
	}

	fs := afero.NewOsFs()
	walker := utils.NewDirWalker(func(path string, err error) {
		report.Errorf("%v: %v", path, err)
	})
	copier := NewCopier(fs, walker, lookup(store), report)
	copier.Source = opts.Source
	copier.Target = opts.Target
	copier.FailStop = cfg.FailStop
	copier.Algorithm = cfg.Hash
	copier.Exif = cfg.Exif

	code := 0
	if err := copier.Run(); err != nil {
		report.Errorf("%v", err)
		code = 1
	}

	//records of an aborted run are still written
	if store != nil {
		if err := flush(store, copier.Records()); err != nil {
			report.Errorf("failed to save database: %v", err)
			return 1
		}
		report.Infof("database updated.")
	}

	showDetails(report, copier.Stats, store)
	if code == 0 {
		report.Infof("done.")
	}

	return code
}

//loadConfig - ini settings overridden by the options given on the command line
func loadConfig(opts *options, parser *flags.Parser) (*utils.Config, error) {
	base, err := utils.ExecutableDir()
	if err != nil {
		return nil, &utils.ConfigError{Msg: "cannot locate executable", Err: err}
	}
	path := opts.Config
	required := path != ""
	if !required {
		path = base + string(os.PathSeparator) + utils.ConfigName
	}
	cfg, err := utils.LoadConfig(path, base, required)
	if err != nil {
		return nil, err
	}

	if parser.FindOptionByShortName('e').IsSet() {
		cfg.FailStop = opts.FailStop
	}
	if opts.Algorithm != "" {
		if _, err := utils.NewHash(opts.Algorithm); err != nil {
			return nil, err
		}
		cfg.Hash = opts.Algorithm
	}
	if opts.Exif {
		cfg.Exif = true
	}

	return cfg, nil
}

//lookup - avoids a typed nil inside the interface
func lookup(store *swap.Store) hashStore {
	if store == nil {
		return nil
	}
	return store
}

func flush(store *swap.Store, records []*swap.Record) error {
	if err := store.InsertBatch(records); err != nil {
		return &utils.FlushError{Count: len(records), Err: err}
	}
	return nil
}

func showDetails(report *utils.Reporter, st Stats, store *swap.Store) {
	report.Infof("Copied   : %v (%v)", humanize.Comma(int64(st.Copied)), humanize.IBytes(uint64(st.CopiedBytes)))
	report.Infof("Unchanged: %v", humanize.Comma(int64(st.Unchanged)))
	if errs := st.HashErrors + st.CopyErrors + st.LookupErrors; errs > 0 {
		report.Infof("Errors   : %v (hash %v, copy %v, lookup %v)", errs, st.HashErrors, st.CopyErrors, st.LookupErrors)
	}
	if store != nil {
		if count, err := store.Count(); err == nil {
			report.Infof("Records  : %v", humanize.Comma(int64(count)))
		}
	}
}
