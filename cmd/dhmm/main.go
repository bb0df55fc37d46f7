// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"io/ioutil"
	"os"
	osuser "os/user"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/akualab/dhmm"
	"github.com/golang/glog"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	appName    = "dhmm"
	appVersion = "0.1"
)

var (
	props  *Properties
	logDir *string
)

var (
	app         = kingpin.New(appName, "Discrete hidden Markov model command-line tool.")
	logToStderr = app.Flag("log-stderr", "Logs are written to standard error instead of files.").Default("true").Bool()
	vLevel      = app.Flag("log-level", "Enable V-leveled logging at the specified level.").Default("0").Short('v').String()
	configFile  = app.Flag("config", "Yaml config file.").Short('c').Default("").String()

	train          = app.Command("train", "Train a model using a corpus.")
	trainData      = train.Flag("data", "Corpus file, one json sequence per line.").Short('d').Default("").String()
	trainOut       = train.Flag("out", "Output model file.").Short('o').Required().String()
	trainStates    = train.Flag("states", "Number of hidden states (unsupervised).").Default("0").Int()
	trainIter      = train.Flag("iter", "Number of Baum-Welch iterations.").Default("0").Int()
	trainSupervise = train.Flag("supervised", "Use the state labels in the corpus.").Default("false").Bool()
	trainName      = train.Flag("name", "Model name.").Default("hmm").String()

	decode      = app.Command("decode", "Find the most likely state sequences.")
	decodeModel = decode.Flag("model", "Model file.").Short('m').Required().String()
	decodeData  = decode.Flag("data", "Corpus file.").Short('d').Default("").String()

	score      = app.Command("score", "Compute the log probability of sequences.")
	scoreModel = score.Flag("model", "Model file.").Short('m').Required().String()
	scoreData  = score.Flag("data", "Corpus file.").Short('d').Default("").String()

	rand         = app.Command("rand", "Generate random data using model.")
	randModel    = rand.Flag("model", "Model file.").Short('m').Required().String()
	randNum      = rand.Flag("num", "Number of sequences.").Short('n').Default("1").Int()
	randLen      = rand.Flag("len", "Sequence length.").Default("0").Int()
	randSeed     = rand.Flag("seed", "Seed for random number generator.").Default("0").Int64()
	randVocab    = rand.Flag("vocab", "Vocabulary file, prints tokens instead of indices.").Default("").String()
	randBudget   = rand.Flag("syllables", "Syllables per line, requires a vocabulary and hyphenation patterns.").Default("0").Int()
	randFirst    = rand.Flag("first", "First symbol of every line.").Default("-1").Int()
	randPatterns = rand.Flag("patterns", "TeX hyphenation pattern file used to count syllables.").Default("").String()
)

// Properties of dhmm.
type Properties struct {
	Workspace string `toml:"workspace_dir"`
	LogDir    string `toml:"log_dir"`
}

func init() {
	currDir, e1 := os.Getwd()
	dhmm.Fatal(e1)
	propPath := currDir
	u, e2 := osuser.Current()
	if e2 == nil {
		propPath = filepath.Join(u.HomeDir, ".config", appName)
	}
	propPath = filepath.Join(propPath, "properties.toml")
	propEnvVar := os.Getenv("DHMM_PROPERTIES")
	if len(propEnvVar) > 0 {
		propPath = propEnvVar
	}

	// Read toml properties file from propPath.
	props = new(Properties)
	dat, e3 := ioutil.ReadFile(propPath)
	if e3 == nil {
		_, e4 := toml.Decode(string(dat), props)
		dhmm.Fatal(e4)
	}
	defaultLogDir := filepath.Join(currDir, "log")
	if len(props.LogDir) > 0 {
		defaultLogDir = props.LogDir
	}
	logDir = app.Flag("log", "Log output dir.").Default(defaultLogDir).String()
}

func main() {
	app.Version(appVersion)
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	initGlog()
	defer glog.Flush()
	printAppValues()
	checkDir(props.Workspace)

	config := dhmm.DefaultConfig()
	if len(*configFile) > 0 {
		var err error
		config, err = dhmm.ReadConfig(*configFile)
		dhmm.Fatal(err)
	}

	switch cmd {

	case train.FullCommand():
		glog.V(3).Info("start train command")
		dhmm.Fatal(doTrain(config))

	case decode.FullCommand():
		glog.V(3).Info("start decode command")
		dhmm.Fatal(doDecode(config, os.Stdout))

	case score.FullCommand():
		glog.V(3).Info("start score command")
		dhmm.Fatal(doScore(config, os.Stdout))

	case rand.FullCommand():
		glog.V(3).Info("start rand command")
		dhmm.Fatal(doRand(config, os.Stdout))

	default:
		app.Usage(os.Args[1:])
	}
}

// Creates dir if it doesn't exist.
func checkDir(path string) {

	if len(path) == 0 {
		return
	}
	e := os.MkdirAll(path, 0755)
	if e != nil {
		glog.Fatal(e)
	}
}

func initGlog() {

	checkDir(*logDir)
	if *logToStderr {
		flag.Set("alsologtostderr", "true")
	}
	flag.Set("v", *vLevel)
	flag.Set("log_dir", *logDir)
}

func printAppValues() {
	glog.Info("app properties:", *props)
	glog.Info("app version: ", appVersion)
	glog.Info("app config file: ", *configFile)
	glog.Info("app log to std err: ", *logToStderr)
	glog.Info("app log level: ", *vLevel)
	glog.Info("app log dir: ", *logDir)
}
