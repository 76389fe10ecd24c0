package main

import (
	"fmt"
	"io/ioutil"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/ahmadsaad58/todo/bolt"
	"github.com/ahmadsaad58/todo/group"
	"github.com/ahmadsaad58/todo/index"
	"github.com/ahmadsaad58/todo/log"
)

var (
	// flags
	env string

	// logger
	logger log.Logger

	// drivers
	boltDriver *bolt.Driver

	// stores
	groupStore *group.Store

	// config
	cfg Configuration
)

type Configuration struct {
	Bolt struct {
		Store string `toml:"store"`
		Table string `toml:"table"`
	} `toml:"bolt"`
	Index struct {
		File string `toml:"file"`
	} `toml:"index"`
	Web struct {
		Addr string `toml:"addr"`
	} `toml:"web"`
}

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "")
}

var RootCmd = cobra.Command{
	Use:   "todo",
	Short: "Group todo store",
	Long:  "Data-access layer for groups of users sharing todo lists",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration
		cfgData, err := ioutil.ReadFile(fmt.Sprintf("configuration/config.%s.toml", env))
		if err != nil {
			fmt.Println("error reading configuration:", err)
			return
		}

		err = toml.Unmarshal(cfgData, &cfg)
		if err != nil {
			fmt.Println("error unmarshalling configuration:", err)
			return
		}

		// Create logger
		logger = log.New(env)

		// Create stores
		boltDriver = &bolt.Driver{}
		if err := boltDriver.Open(cfg.Bolt.Store); err != nil {
			logger.Fatal("could not open bolt store:", err)
		}

		table, err := bolt.NewTable(boltDriver, cfg.Bolt.Table)
		if err != nil {
			logger.Fatal("could not connect to table:", err)
		}

		idx, err := index.Load(cfg.Index.File)
		if err != nil {
			logger.Fatal("could not load group index:", err)
		}

		groupStore = group.NewStore(table, idx, logger)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		boltDriver.Close()
	},
}
