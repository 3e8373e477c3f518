package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/junseok-oh/cloudquote/internal/config"
	"github.com/junseok-oh/cloudquote/internal/models"
	"github.com/junseok-oh/cloudquote/internal/version"
	"github.com/junseok-oh/cloudquote/pkg/estimate"
	"github.com/junseok-oh/cloudquote/pkg/formatter"
	"github.com/junseok-oh/cloudquote/pkg/pricing"
	"github.com/junseok-oh/cloudquote/pkg/recommend"
	"github.com/junseok-oh/cloudquote/pkg/tools"
	"github.com/junseok-oh/cloudquote/pkg/utils"
)

var (
	regionFlag  string
	configPath  string
	jsonOutput  bool
	showVersion bool
)

// startQuerySpinner creates and starts a spinner with a message for the given service
func startQuerySpinner(what string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Querying %s pricing ...", what)
	// Don't set FinalMSG here as it will be set dynamically based on query time
	s.Start()
	return s
}

// stopQuerySpinner sets the completion message with query time and stops the spinner
func stopQuerySpinner(s *spinner.Spinner, what string, startTime time.Time) {
	s.FinalMSG = fmt.Sprintf("✓ %s pricing resolved - Completed in %.2f seconds\n",
		what, time.Since(startTime).Seconds())
	s.Stop()
}

// newLogger builds a console logger at the configured level
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

// setup loads the config file and builds a live pricing client
func setup(ctx context.Context) (*pricing.Client, config.Config, zerolog.Logger, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CLOUDQUOTE_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, cfg, zerolog.Nop(), err
	}

	logger := newLogger(cfg.LogLevel)

	client, err := pricing.NewClient(ctx, cfg.CacheTTL(), logger)
	if err != nil {
		return nil, cfg, logger, err
	}
	return client, cfg, logger, nil
}

// resolveRegion applies the flag > description > config precedence
func resolveRegion(client *pricing.Client, cfg config.Config, fromProfile string) string {
	if regionFlag != "" {
		return client.ValidateRegion(regionFlag)
	}
	if fromProfile != "" {
		return client.ValidateRegion(fromProfile)
	}
	return cfg.DefaultRegion
}

// printResult prints v as indented JSON or hands off to the table printer
func printResult(v any, table func()) error {
	if jsonOutput {
		out, err := utils.FormatJSON(v)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	table()
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "cloudquote",
		Short: "CLI tool to quote and recommend AWS resources",
		Long: `cloudquote answers AWS pricing questions, recommends resource
configurations from free-text requirements, and assembles cost
estimates and proposals using the AWS Price List API.`,
		Run: func(cmd *cobra.Command, args []string) {
			if showVersion {
				info := version.Get()
				fmt.Printf("cloudquote version %s (commit: %s, built: %s, %s)\n",
					info.Version, info.GitCommit, info.BuildDate, info.GoVersion)
				return
			}
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&regionFlag, "region", "r", "",
		fmt.Sprintf("AWS region to quote (default: %s)", utils.GetDefaultRegion()))
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON instead of tables")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(
		newPriceCmd(),
		newRecommendCmd(),
		newExtractCmd(),
		newEstimateCmd(),
		newProposeCmd(),
		newToolsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// requiredPriceFlags checks the flags each price service needs before
// any client is built, so a missing flag errors as "required" rather
// than failing enum validation downstream.
func requiredPriceFlags(service, instanceType, volumeType, nodeType, engine, toRegion string) error {
	switch service {
	case "ec2", "opensearch":
		if instanceType == "" {
			return fmt.Errorf("--instance-type is required for %s", service)
		}
	case "rds":
		if instanceType == "" {
			return fmt.Errorf("--instance-type is required for rds")
		}
		if engine == "" {
			return fmt.Errorf("--engine is required for rds")
		}
	case "ebs":
		if volumeType == "" {
			return fmt.Errorf("--volume-type is required for ebs")
		}
	case "elasticache":
		if nodeType == "" {
			return fmt.Errorf("--node-type is required for elasticache")
		}
	case "network":
		if toRegion == "" {
			return fmt.Errorf("--to-region is required for network")
		}
	case "s3", "elb", "instance-types":
	default:
		return fmt.Errorf("unknown service %q", service)
	}
	return nil
}

// newPriceCmd quotes a single service configuration
func newPriceCmd() *cobra.Command {
	var (
		instanceType string
		osName       string
		volumeType   string
		sizeGB       int
		storageClass string
		storageGB    int
		engine       string
		deployment   string
		nodeType     string
		lbType       string
		toRegion     string
	)

	cmd := &cobra.Command{
		Use:   "price <service>",
		Short: "Quote one service configuration",
		Long: `Quote one service configuration. Supported services:
ec2, ebs, s3, rds, elasticache, opensearch, elb, network, instance-types.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			service := strings.ToLower(args[0])

			if err := requiredPriceFlags(service, instanceType, volumeType, nodeType, engine, toRegion); err != nil {
				return err
			}

			client, cfg, _, err := setup(ctx)
			if err != nil {
				return err
			}
			region := resolveRegion(client, cfg, "")

			startTime := time.Now()
			s := startQuerySpinner(service)

			var result any
			var table func()
			switch service {
			case "ec2":
				sp, err := client.EC2InstancePricing(ctx, instanceType, osName, region)
				if err != nil {
					s.Stop()
					return err
				}
				result = sp
				table = func() { formatter.PrintServicePricing(os.Stdout, sp) }
			case "ebs":
				sp, err := client.EBSVolumePricing(ctx, volumeType, region, sizeGB)
				if err != nil {
					s.Stop()
					return err
				}
				result = sp
				table = func() { formatter.PrintServicePricing(os.Stdout, sp) }
			case "s3":
				sp, err := client.S3StoragePricing(ctx, storageClass, region, storageGB)
				if err != nil {
					s.Stop()
					return err
				}
				result = sp
				table = func() { formatter.PrintServicePricing(os.Stdout, sp) }
			case "rds":
				sp, err := client.RDSInstancePricing(ctx, instanceType, engine, deployment, region)
				if err != nil {
					s.Stop()
					return err
				}
				result = sp
				table = func() { formatter.PrintServicePricing(os.Stdout, sp) }
			case "elasticache":
				cacheEngine := engine
				if cacheEngine == "" {
					cacheEngine = "Redis"
				}
				sp, err := client.ElastiCachePricing(ctx, nodeType, cacheEngine, region)
				if err != nil {
					s.Stop()
					return err
				}
				result = sp
				table = func() { formatter.PrintServicePricing(os.Stdout, sp) }
			case "opensearch":
				sp, err := client.OpenSearchPricing(ctx, instanceType, region)
				if err != nil {
					s.Stop()
					return err
				}
				result = sp
				table = func() { formatter.PrintServicePricing(os.Stdout, sp) }
			case "elb":
				sp, err := client.LoadBalancerPricing(ctx, lbType, region)
				if err != nil {
					s.Stop()
					return err
				}
				result = sp
				table = func() { formatter.PrintServicePricing(os.Stdout, sp) }
			case "network":
				tp, err := client.DataTransferPricing(ctx, region, toRegion)
				if err != nil {
					s.Stop()
					return err
				}
				result = tp
				table = func() { formatter.PrintTransferPricing(os.Stdout, tp) }
			case "instance-types":
				infos, err := client.InstanceTypeCatalog(ctx, region)
				if err != nil {
					s.Stop()
					return err
				}
				result = infos
				table = func() { formatter.PrintInstanceTypesTable(os.Stdout, infos) }
			default:
				s.Stop()
				return fmt.Errorf("unknown service %q", service)
			}

			stopQuerySpinner(s, service, startTime)

			if err := printResult(result, table); err != nil {
				return err
			}
			if !jsonOutput {
				formatter.PrintPricingAPIStats(os.Stdout, client.Stats().Snapshot())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&instanceType, "instance-type", "", "Instance type or class (e.g. t3.micro, db.r5.large)")
	cmd.Flags().StringVar(&osName, "os", "Linux", "Operating system for EC2 quotes")
	cmd.Flags().StringVar(&volumeType, "volume-type", "", "EBS volume type (e.g. gp3)")
	cmd.Flags().IntVar(&sizeGB, "size-gb", 100, "Volume size in GB")
	cmd.Flags().StringVar(&storageClass, "storage-class", "standard", "S3 storage class")
	cmd.Flags().IntVar(&storageGB, "storage-gb", 100, "S3 storage in GB")
	cmd.Flags().StringVar(&engine, "engine", "", "Database engine for rds, cache engine for elasticache (default Redis)")
	cmd.Flags().StringVar(&deployment, "deployment", "Single-AZ", "RDS deployment option")
	cmd.Flags().StringVar(&nodeType, "node-type", "", "ElastiCache node type (e.g. cache.m5.large)")
	cmd.Flags().StringVar(&lbType, "lb-type", "application", "Load balancer type")
	cmd.Flags().StringVar(&toRegion, "to-region", "", "Destination region for transfer quotes")

	return cmd
}

// newRecommendCmd recommends configurations from a free-text description
func newRecommendCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "recommend <kind>",
		Short: "Recommend configurations from a requirement description",
		Long: `Recommend configurations from a free-text requirement description.
Supported kinds: ec2, ebs, s3, rds, elasticache, opensearch, elb.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			kind := strings.ToLower(args[0])

			client, cfg, logger, err := setup(ctx)
			if err != nil {
				return err
			}

			profile := recommend.Extract(description)
			region := resolveRegion(client, cfg, profile.Region)
			engine := recommend.NewEngine(client, logger)

			startTime := time.Now()
			s := startQuerySpinner(kind)

			var recs []models.Recommendation
			switch kind {
			case "ec2":
				recs, err = engine.RecommendEC2(ctx, profile, region)
				if err != nil {
					s.Stop()
					return err
				}
			case "ebs":
				recs = engine.RecommendEBS(ctx, profile, region)
			case "s3":
				recs = engine.RecommendS3(ctx, profile, region)
			case "rds":
				recs = engine.RecommendRDS(ctx, profile, region)
			case "elasticache":
				recs = engine.RecommendElastiCache(ctx, profile, region)
			case "opensearch":
				recs = engine.RecommendOpenSearch(ctx, profile, region)
			case "elb":
				recs = engine.RecommendLoadBalancer(ctx, profile, region)
			default:
				s.Stop()
				return fmt.Errorf("unknown kind %q", kind)
			}

			stopQuerySpinner(s, kind, startTime)

			if err := printResult(recs, func() { formatter.PrintRecommendationsTable(os.Stdout, recs) }); err != nil {
				return err
			}
			if !jsonOutput {
				formatter.PrintPricingAPIStats(os.Stdout, client.Stats().Snapshot())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Free-text requirement description")
	cmd.MarkFlagRequired("description")

	return cmd
}

// newExtractCmd parses a description into a structured profile
func newExtractCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract structured requirements from a description",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := recommend.Extract(description)
			out, err := utils.FormatJSON(profile)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Free-text requirement description")
	cmd.MarkFlagRequired("description")

	return cmd
}

// newEstimateCmd prices a resource bundle from a JSON file
func newEstimateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the monthly cost of a resource bundle",
		Long: `Estimate the monthly cost of a resource bundle described in a JSON
file holding a list of resource specs, e.g.:

  [{"type": "ec2", "instance_type": "m5.large", "count": 2}]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading resource file: %w", err)
			}
			var resources []models.ResourceSpec
			if err := json.Unmarshal(data, &resources); err != nil {
				return fmt.Errorf("parsing resource file: %w", err)
			}

			client, cfg, logger, err := setup(ctx)
			if err != nil {
				return err
			}
			region := resolveRegion(client, cfg, "")
			aggregator := estimate.NewAggregator(client, logger)

			startTime := time.Now()
			s := startQuerySpinner(fmt.Sprintf("%d resources", len(resources)))

			report := aggregator.CalculateTotalCost(ctx, resources, region)

			stopQuerySpinner(s, "Bundle", startTime)

			if err := printResult(report, func() { formatter.PrintCostReportTable(os.Stdout, report) }); err != nil {
				return err
			}
			if !jsonOutput {
				formatter.PrintPricingAPIStats(os.Stdout, client.Stats().Snapshot())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the resource bundle JSON file")
	cmd.MarkFlagRequired("file")

	return cmd
}

// newProposeCmd generates a proposal document as JSON
func newProposeCmd() *cobra.Command {
	var (
		description  string
		customer     string
		proposalType string
		currentEnv   string
		competitor   string
	)

	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Generate a proposal from a requirement description",
		Long: `Generate a proposal document from a free-text requirement
description. Proposal types: sales, migration, comparison.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, _, logger, err := setup(ctx)
			if err != nil {
				return err
			}
			toolkit := tools.NewToolkit(client, logger)

			args2 := map[string]any{
				"description": description,
				"customer":    customer,
			}
			if regionFlag != "" {
				args2["region"] = regionFlag
			}

			var tool string
			switch proposalType {
			case "sales":
				tool = "generate_sales_proposal"
			case "migration":
				tool = "generate_migration_proposal"
				if currentEnv == "" {
					return fmt.Errorf("--current-env is required for migration proposals")
				}
				args2["current_environment"] = currentEnv
			case "comparison":
				tool = "generate_comparison_proposal"
				if competitor == "" {
					return fmt.Errorf("--competitor is required for comparison proposals")
				}
				args2["competitor"] = competitor
			default:
				return fmt.Errorf("unknown proposal type %q", proposalType)
			}

			startTime := time.Now()
			s := startQuerySpinner("proposal")

			result := toolkit.Call(ctx, tool, args2)

			stopQuerySpinner(s, "Proposal", startTime)

			fmt.Println(utils.IndentJSON(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Free-text requirement description")
	cmd.Flags().StringVarP(&customer, "customer", "c", "Customer", "Customer name")
	cmd.Flags().StringVarP(&proposalType, "type", "t", "sales", "Proposal type (sales, migration, comparison)")
	cmd.Flags().StringVar(&currentEnv, "current-env", "", "Current environment description for migration proposals")
	cmd.Flags().StringVar(&competitor, "competitor", "", "Competitor name for comparison proposals")
	cmd.MarkFlagRequired("description")

	return cmd
}

// newToolsCmd lists and invokes the JSON tool surface directly
func newToolsCmd() *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:   "tools [name]",
		Short: "List or call the JSON tools",
		Long: `Without arguments, list the available tool names. With a name,
call that tool with the JSON arguments given via --args.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, _, logger, err := setup(ctx)
			if err != nil {
				return err
			}
			toolkit := tools.NewToolkit(client, logger)

			if len(args) == 0 {
				fmt.Println("Available tools:")
				for _, name := range toolkit.Names() {
					fmt.Printf("  %s\n", name)
				}
				return nil
			}

			toolArgs := map[string]any{}
			if rawArgs != "" {
				if err := json.Unmarshal([]byte(rawArgs), &toolArgs); err != nil {
					return fmt.Errorf("parsing --args: %w", err)
				}
			}

			result := toolkit.Call(ctx, args[0], toolArgs)
			fmt.Println(utils.IndentJSON(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "", "Tool arguments as a JSON object")

	return cmd
}
