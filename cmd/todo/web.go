package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ahmadsaad58/todo/gin"
)

func init() {
	RootCmd.AddCommand(&WebCmd)
}

var WebCmd = cobra.Command{
	Use:   "web",
	Short: "Serve the group store over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		handler, err := gin.New(groupStore)
		if err != nil {
			logger.Fatal("could not create handler:", err)
		}

		logger.Print("server started, listening on", cfg.Web.Addr)
		logger.Fatal(http.ListenAndServe(cfg.Web.Addr, handler))
	},
}
