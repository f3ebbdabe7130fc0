// cmd/crmctl/main.go
//
// crmctl is the operator CLI: schema migration, user bootstrap and team
// assignment maintenance against the database directly. It runs with
// operator credentials and therefore goes through the same ledger
// transactions as the API, but not through the HTTP authorization gate.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/estateflow/crm/internal/auth"
	"github.com/estateflow/crm/internal/config"
	"github.com/estateflow/crm/internal/model"
	"github.com/estateflow/crm/internal/repository"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crmctl",
		Short:         "Estate CRM operations tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(migrateCmd(), userCmd(), teamCmd())
	return root
}

func openDB() (*gorm.DB, error) {
	cfg := config.Load()
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and invariant indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			if err := repository.Migrate(db); err != nil {
				return err
			}
			fmt.Println("migration complete")
			return nil
		},
	}
}

func userCmd() *cobra.Command {
	user := &cobra.Command{
		Use:   "user",
		Short: "User maintenance",
	}

	var email, firstName, lastName, password, role string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user (bootstrap an admin before first API use)",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := model.Role(role)
			if !r.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}
			db, err := openDB()
			if err != nil {
				return err
			}

			hash, err := auth.NewPasswordHasher().Hash(password)
			if err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}
			u := &model.User{
				Email:        email,
				FirstName:    firstName,
				LastName:     lastName,
				PasswordHash: hash,
				Role:         r,
				IsActive:     true,
			}
			if err := repository.NewUserRepository(db).Create(context.Background(), u); err != nil {
				return err
			}
			return printJSON(u)
		},
	}
	create.Flags().StringVar(&email, "email", "", "email address")
	create.Flags().StringVar(&firstName, "first-name", "", "first name")
	create.Flags().StringVar(&lastName, "last-name", "", "last name")
	create.Flags().StringVar(&password, "password", "", "initial password")
	create.Flags().StringVar(&role, "role", string(model.RoleAgent), "role")
	create.MarkFlagRequired("email")
	create.MarkFlagRequired("first-name")
	create.MarkFlagRequired("password")

	user.AddCommand(create)
	return user
}

func teamCmd() *cobra.Command {
	team := &cobra.Command{
		Use:   "team",
		Short: "Team assignment maintenance",
	}

	var leader, agent, actor string
	assign := &cobra.Command{
		Use:   "assign",
		Short: "Assign an agent to a team leader",
		RunE: func(cmd *cobra.Command, args []string) error {
			leaderID, agentID, actorID, err := parseIDs(leader, agent, actor)
			if err != nil {
				return err
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			row, err := repository.NewAssignmentRepository(db).Assign(context.Background(), leaderID, agentID, actorID)
			if err != nil {
				return err
			}
			return printJSON(row)
		},
	}
	addTeamFlags(assign, &leader, &agent, &actor)

	remove := &cobra.Command{
		Use:   "remove",
		Short: "Remove an agent from a team leader",
		RunE: func(cmd *cobra.Command, args []string) error {
			leaderID, agentID, _, err := parseIDs(leader, agent, "")
			if err != nil {
				return err
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			row, err := repository.NewAssignmentRepository(db).Remove(context.Background(), leaderID, agentID)
			if err != nil {
				return err
			}
			return printJSON(row)
		},
	}
	remove.Flags().StringVar(&leader, "leader", "", "team leader id")
	remove.Flags().StringVar(&agent, "agent", "", "agent id")
	remove.MarkFlagRequired("leader")
	remove.MarkFlagRequired("agent")

	var newLeader string
	transfer := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer an agent to a different team leader",
		RunE: func(cmd *cobra.Command, args []string) error {
			leaderID, agentID, actorID, err := parseIDs(leader, agent, actor)
			if err != nil {
				return err
			}
			newLeaderID, err := uuid.Parse(newLeader)
			if err != nil {
				return fmt.Errorf("invalid new leader id: %w", err)
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			row, err := repository.NewAssignmentRepository(db).Transfer(context.Background(), leaderID, agentID, newLeaderID, actorID)
			if err != nil {
				return err
			}
			return printJSON(row)
		},
	}
	addTeamFlags(transfer, &leader, &agent, &actor)
	transfer.Flags().StringVar(&newLeader, "new-leader", "", "new team leader id")
	transfer.MarkFlagRequired("new-leader")

	team.AddCommand(assign, remove, transfer)
	return team
}

func addTeamFlags(cmd *cobra.Command, leader, agent, actor *string) {
	cmd.Flags().StringVar(leader, "leader", "", "team leader id")
	cmd.Flags().StringVar(agent, "agent", "", "agent id")
	cmd.Flags().StringVar(actor, "by", "", "acting operator user id")
	cmd.MarkFlagRequired("leader")
	cmd.MarkFlagRequired("agent")
	cmd.MarkFlagRequired("by")
}

func parseIDs(leader, agent, actor string) (uuid.UUID, uuid.UUID, uuid.UUID, error) {
	leaderID, err := uuid.Parse(leader)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, fmt.Errorf("invalid leader id: %w", err)
	}
	agentID, err := uuid.Parse(agent)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, fmt.Errorf("invalid agent id: %w", err)
	}
	actorID := uuid.Nil
	if actor != "" {
		actorID, err = uuid.Parse(actor)
		if err != nil {
			return uuid.Nil, uuid.Nil, uuid.Nil, fmt.Errorf("invalid actor id: %w", err)
		}
	}
	return leaderID, agentID, actorID, nil
}
