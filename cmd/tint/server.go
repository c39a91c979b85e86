package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/tintkit/internal/config"
	"github.com/thatcatcamp/tintkit/internal/handlers"
	"github.com/thatcatcamp/tintkit/internal/harmony"
	"github.com/thatcatcamp/tintkit/internal/suggest"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Run the palette HTTP API",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		engineCfg, err := config.EngineConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		rule, err := harmony.ParseRule(config.GetString("engine.harmony_rule"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		opts := handlers.Options{
			Engine:           engineCfg,
			Rule:             rule,
			SuggestRateLimit: config.GetInt("server.suggest_rate_limit"),
			HSTS:             config.GetBool("server.hsts"),
			TrustedProxies:   config.GetStringSlice("server.trusted_proxies"),
		}
		if url := config.GetString("suggest.url"); url != "" {
			opts.Suggest = suggest.NewClient(url, config.GetDuration("suggest.timeout"))
			log.Printf("Suggestions enabled via %s", url)
		} else {
			log.Println("Suggestions disabled (suggest.url not set)")
		}

		r, err := handlers.NewRouter(opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		server := &http.Server{
			Addr:              httpAddr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			fmt.Printf("Starting HTTP server on %s\n", httpAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
				os.Exit(1)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
