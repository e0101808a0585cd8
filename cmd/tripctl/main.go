package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - hash:     Hash the shared passcode for auth.passcodeHash
// - route:    Resolve one driving route with the configured directions provider
// - snapshot: Print the local snapshot of the configured owner

func main() {
	hashCmd := flag.NewFlagSet("hash", flag.ExitOnError)
	routeCmd := flag.NewFlagSet("route", flag.ExitOnError)
	snapshotCmd := flag.NewFlagSet("snapshot", flag.ExitOnError)

	// hash parameters
	hashPasscode := hashCmd.String("passcode", "", "Shared passcode to hash")

	// route parameters
	routeFrom := routeCmd.String("from", "", "Start coordinate as lng,lat")
	routeTo := routeCmd.String("to", "", "End coordinate as lng,lat")
	routeProvider := routeCmd.String("provider", "", "Override directions.provider (webapi, tiles)")

	// snapshot parameters
	snapshotKind := snapshotCmd.String("kind", "all", "What to print (locations, categories, all)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	flags := ctlFlags{
		Hash: hashFlags{
			cmd:      hashCmd,
			passcode: hashPasscode,
		},
		Route: routeFlags{
			cmd:      routeCmd,
			from:     routeFrom,
			to:       routeTo,
			provider: routeProvider,
		},
		Snapshot: snapshotFlags{
			cmd:  snapshotCmd,
			kind: snapshotKind,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Hash     hashFlags
	Route    routeFlags
	Snapshot snapshotFlags
}

type hashFlags struct {
	cmd      *flag.FlagSet
	passcode *string
}

type routeFlags struct {
	cmd      *flag.FlagSet
	from     *string
	to       *string
	provider *string
}

type snapshotFlags struct {
	cmd  *flag.FlagSet
	kind *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "hash":
		return handleHash(flags)
	case "route":
		return handleRoute(ctx, flags)
	case "snapshot":
		return handleSnapshot(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleHash(flags *ctlFlags) error {
	if err := flags.Hash.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse hash flags")
	}

	if *flags.Hash.passcode == "" {
		return errors.New("--passcode flag is required for hash command")
	}

	return runHash(os.Stdout, *flags.Hash.passcode)
}

func handleRoute(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Route.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse route flags")
	}

	from, err := parsePoint(*flags.Route.from)
	if err != nil {
		return errors.Wrap(err, "invalid --from")
	}
	to, err := parsePoint(*flags.Route.to)
	if err != nil {
		return errors.Wrap(err, "invalid --to")
	}

	return runRoute(ctx, os.Stdout, from, to, *flags.Route.provider)
}

func handleSnapshot(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Snapshot.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse snapshot flags")
	}

	return runSnapshot(ctx, os.Stdout, *flags.Snapshot.kind)
}

func printUsage() {
	fmt.Println("Usage: tripctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  hash        Hash the shared passcode for auth.passcodeHash")
	fmt.Println("  route       Resolve a driving route with the configured provider")
	fmt.Println("  snapshot    Print the local snapshot")
	fmt.Println("")
	fmt.Println("Use 'tripctl <command> -h' for more information about a command.")
}
