package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/brightfuture/youth-center/internal/config"
	"github.com/brightfuture/youth-center/pkg/core/model"
	"github.com/brightfuture/youth-center/pkg/core/registry"
	"github.com/brightfuture/youth-center/pkg/core/services"
	"github.com/brightfuture/youth-center/pkg/core/staff"
	"github.com/brightfuture/youth-center/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg      *config.Config
	registry *registry.Registry
	logger   *zap.Logger
	ctx      context.Context
}

var (
	env string
	app *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Youth Center CLI - Manage personnel and activity scheduling",
		Long:  `A CLI tool for managing the youth centre's staff registry, activity bookings, and certification checks.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(addPersonCmd())
	rootCmd.AddCommand(removePersonCmd())
	rootCmd.AddCommand(scheduleActivityCmd())
	rootCmd.AddCommand(listPersonnelCmd())
	rootCmd.AddCommand(verifyCertificationsCmd())
	rootCmd.AddCommand(logHoursCmd())
	rootCmd.AddCommand(sessionDatesCmd())
	rootCmd.AddCommand(interactiveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and the staff registry
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	app.logger.Info("Loading configuration")
	app.cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	app.registry = registry.New(app.cfg.CenterName)
	app.logger.Info("Registry created", zap.String("center", app.cfg.CenterName))

	// Seed the roster from config
	for _, seed := range app.cfg.SeedRoster {
		req := services.RegisterStaffRequest{
			Name:                seed.Name,
			Role:                seed.Role,
			Specialization:      seed.Specialization,
			CaseLoad:            seed.CaseLoad,
			Subject:             seed.Subject,
			EducationLevel:      seed.EducationLevel,
			Availability:        seed.Availability,
			CertificationExpiry: seed.CertificationExpiry,
		}
		if _, err := services.RegisterStaff(app.ctx, app.registry, app.logger, req); err != nil {
			return fmt.Errorf("failed to seed roster entry %q: %w", seed.Name, err)
		}
	}

	app.logger.Info("Registry seeded", zap.Int("personnel", len(app.registry.Personnel())))
	return nil
}

// Command definitions

func addPersonCmd() *cobra.Command {
	var (
		role           string
		specialization string
		caseLoad       int
		subject        string
		educationLevel string
		availability   string
		certExpiry     string
	)

	cmd := &cobra.Command{
		Use:   "addPerson <name>",
		Short: "Register a new staff member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := services.RegisterStaffRequest{
				Name:                args[0],
				Role:                model.Role(role),
				Specialization:      specialization,
				CaseLoad:            caseLoad,
				Subject:             subject,
				EducationLevel:      model.EducationLevel(educationLevel),
				Availability:        model.AvailabilityPattern(availability),
				CertificationExpiry: certExpiry,
			}

			record, err := services.RegisterStaff(app.ctx, app.registry, app.logger, req)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %s '%s' added successfully.\n", record.Role(), record.ID())
			fmt.Println(record.DisplayInfo())
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role: Counselor, Educator or Volunteer (required)")
	cmd.Flags().StringVar(&specialization, "specialization", "", "Counselor specialization (e.g. behavioral, family)")
	cmd.Flags().IntVar(&caseLoad, "case-load", 0, "Counselor case load (0-20)")
	cmd.Flags().StringVar(&subject, "subject", "", "Educator subject (e.g. mathematics)")
	cmd.Flags().StringVar(&educationLevel, "education-level", "", "Educator education level")
	cmd.Flags().StringVar(&availability, "availability", "", "Volunteer availability: weekends, weekdays or all")
	cmd.Flags().StringVar(&certExpiry, "cert-expiry", "", "Certification expiry date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("role")

	return cmd
}

func removePersonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "removePerson <id>",
		Short: "Remove a staff member by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			app.logger.Info("removePerson command", zap.String("id", id))

			if !app.registry.RemovePerson(id) {
				fmt.Printf("No person with ID %s found.\n", id)
				return nil
			}

			fmt.Printf("✓ Person %s removed.\n", id)
			return nil
		},
	}
}

func scheduleActivityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scheduleActivity <name> <date> <time> <responsible_id>",
		Short: "Schedule an activity with a responsible staff member",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, date, timeToken, responsibleID := args[0], args[1], args[2], args[3]

			if services.PlanActivity(app.ctx, app.registry, app.logger, name, date, timeToken, responsibleID) {
				fmt.Printf("✓ Activity '%s' scheduled successfully.\n", name)
			} else {
				fmt.Println("Failed to schedule activity. Check the id, availability and schedule conflicts.")
			}
			return nil
		},
	}
}

func listPersonnelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listPersonnel",
		Short: "List all staff members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			personnel := app.registry.Personnel()
			counts := app.registry.PersonnelCount()

			fmt.Printf("\nCenter: %s\n\nPersonnel Breakdown:\n", app.registry.Name())
			for _, role := range []model.Role{model.RoleCounselor, model.RoleEducator, model.RoleVolunteer} {
				fmt.Printf("  %ss: %d\n", role, counts[role])
			}

			fmt.Printf("\nAll Personnel (%d):\n", len(personnel))
			for _, record := range personnel {
				fmt.Println(record.DisplayInfo())
			}
			return nil
		},
	}
}

func verifyCertificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verifyCertifications",
		Short: "Verify certifications for all certified staff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := services.AuditCertifications(app.ctx, app.registry, app.logger)

			if len(results) == 0 {
				fmt.Println("No certifications to verify.")
				return nil
			}

			fmt.Println("\nCertification Verification Results:")
			for _, result := range results {
				status := "VALID"
				if !result.CertificationValid {
					status = "INVALID"
				}
				fmt.Printf("%s | %s | Status: %s\n", result.ID, result.Name, status)
				fmt.Printf("  Details: %s\n", result.Details)
			}
			return nil
		},
	}
}

func logHoursCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logHours <volunteer_id> <hours>",
		Short: "Log completed hours for a volunteer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("hours must be a number: %w", err)
			}

			total, err := services.LogVolunteerHours(app.ctx, app.registry, app.logger, args[0], hours)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Hours logged. %s now has %d hours completed.\n", args[0], total)
			return nil
		},
	}
}

func sessionDatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessionDates <count>",
		Short: "Show the next session dates from the configured pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("count must be a number: %w", err)
			}

			dates, err := services.SessionDates(app.logger, app.cfg.SessionPattern, count)
			if err != nil {
				return err
			}

			fmt.Printf("\nNext %d session dates:\n", count)
			for i, date := range dates {
				fmt.Printf("  %2d. %s\n", i+1, date)
			}
			if len(app.cfg.SessionTimes) > 0 {
				fmt.Printf("\nSession times: %s\n", strings.Join(app.cfg.SessionTimes, ", "))
			}
			return nil
		},
	}
}

func interactiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (load the registry once, run multiple commands)",
		Long: `Start an interactive session where you can run multiple commands against the
same in-memory registry. The session will keep running until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\nStarting interactive session...")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			// Get all sibling commands (excluding interactive itself)
			rootCmd := cmd.Parent()
			commands := make(map[string]*cobra.Command)
			for _, subCmd := range rootCmd.Commands() {
				if subCmd.Name() != "interactive" && subCmd.Name() != "completion" && subCmd.Name() != "help" {
					commands[subCmd.Name()] = subCmd
				}
			}

			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Print("> ")

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				parts := strings.Fields(line)
				cmdName := parts[0]
				cmdArgs := parts[1:]

				if cmdName == "exit" || cmdName == "quit" {
					fmt.Println("Goodbye!")
					return nil
				}

				if cmdName == "help" {
					printInteractiveHelp(commands)
					continue
				}

				if cmdName == "live" {
					// Diagnostic: live record instances currently held
					fmt.Printf("Live staff records: %d\n", staff.LiveRecordCount())
					continue
				}

				targetCmd, exists := commands[cmdName]
				if !exists {
					fmt.Printf("Unknown command: %s (type 'help' for available commands)\n\n", cmdName)
					continue
				}

				// Reset command flags between dispatches
				targetCmd.Flags().VisitAll(func(flag *pflag.Flag) {
					flag.Changed = false
					flag.Value.Set(flag.DefValue)
				})

				// Execute the command's RunE directly, bypassing the full Execute() flow.
				// This avoids re-running PersistentPreRunE which would rebuild the registry.
				if err := targetCmd.ParseFlags(cmdArgs); err != nil {
					fmt.Printf("Error parsing flags: %v\n\n", err)
					continue
				}

				cmdArgs = targetCmd.Flags().Args()

				if err := targetCmd.Args(targetCmd, cmdArgs); err != nil {
					fmt.Printf("Error: %v\n\n", err)
					continue
				}

				if targetCmd.RunE != nil {
					if err := targetCmd.RunE(targetCmd, cmdArgs); err != nil {
						fmt.Printf("Error: %v\n\n", err)
					}
				} else if targetCmd.Run != nil {
					targetCmd.Run(targetCmd, cmdArgs)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			return nil
		},
	}

	return cmd
}

func printInteractiveHelp(commands map[string]*cobra.Command) {
	fmt.Println("\nAvailable commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	for _, name := range names {
		cmd := commands[name]
		fmt.Printf("  %-50s %s\n", cmd.Use, cmd.Short)
	}

	fmt.Println("\n  live                                               Show the live staff record count")
	fmt.Println("  help                                               Show this help message")
	fmt.Println("  exit, quit                                         Exit the interactive session")
}
