package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL  string
	timeout  time.Duration
	start    string
	end      string
	currency string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgerlens-cli",
		Short: "LedgerLens CLI tool",
		Long:  `A command line interface for interacting with the LedgerLens API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the LedgerLens API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&start, "start", "", "Period start (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&end, "end", "", "Period end (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&currency, "currency", "", "Target currency code")

	// Report commands
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Report operations",
	}

	networthCmd := &cobra.Command{
		Use:   "networth",
		Short: "Compute the net worth summary",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/reports/networth", nil)
		},
	}

	var level int
	var root string
	assetsCmd := &cobra.Command{
		Use:   "assets",
		Short: "Compute the asset category breakdown",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/reports/assets", map[string]string{
				"level": fmt.Sprintf("%d", level),
				"root":  root,
			})
		},
	}
	assetsCmd.Flags().IntVar(&level, "level", 1, "Category level (1 or 2)")
	assetsCmd.Flags().StringVar(&root, "root", "", "Asset root account name")

	cashflowCmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Compute incoming and outgoing totals",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/reports/cashflow", nil)
		},
	}

	reportCmd.AddCommand(networthCmd, assetsCmd, cashflowCmd)
	rootCmd.AddCommand(reportCmd)

	// Sync commands
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Analytics mirror operations",
	}

	syncAccountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Rebuild the analytics account mirror",
		Run: func(cmd *cobra.Command, args []string) {
			syncAccounts()
		},
	}

	syncCmd.AddCommand(syncAccountsCmd)
	rootCmd.AddCommand(syncCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getAndPrint(path string, extra map[string]string) {
	query := url.Values{}
	if start != "" {
		query.Set("start", start)
	}
	if end != "" {
		query.Set("end", end)
	}
	if currency != "" {
		query.Set("currency", currency)
	}
	for key, value := range extra {
		if value != "" {
			query.Set(key, value)
		}
	}

	requestURL := baseURL + path
	if encoded := query.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(requestURL)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(pretty.String())
}

func syncAccounts() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/sync/accounts", "application/json", nil)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Sync FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sync completed\n")
	if written, ok := result["accounts_written"].(float64); ok {
		fmt.Printf("Accounts written: %d\n", int(written))
	}
}
