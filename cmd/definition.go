// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// maxProbedArgs bounds the argument counts tried against a command's Args
// validator.
const maxProbedArgs = 10

// Definition is a machine-readable description of the command tree.
type Definition struct {
	Name     string              `json:"name"`
	Version  string              `json:"version"`
	Commands []CommandDefinition `json:"commands"`
	Flags    []FlagDefinition    `json:"flags"`
}

type CommandDefinition struct {
	Name        string              `json:"name"`
	Short       string              `json:"short"`
	Use         string              `json:"use"`
	Hidden      bool                `json:"hidden,omitempty"`
	Example     string              `json:"example"`
	Args        []string            `json:"args"`
	Flags       []FlagDefinition    `json:"flags"`
	Subcommands []CommandDefinition `json:"subcommands"`
}

type FlagDefinition struct {
	Name        string `json:"name"`
	Shorthand   string `json:"shorthand,omitempty"`
	Description string `json:"description"`
	Default     string `json:"default"`
}

// ArgsMismatchError is returned when the positional arguments named in a
// command's ValidArgs disagree with what its Args validator accepts.
type ArgsMismatchError struct {
	Command  string
	Accepted int
	Named    int
}

func (e ArgsMismatchError) Error() string {
	return fmt.Sprintf("command %q accepts %d arguments but names %d", e.Command, e.Accepted, e.Named)
}

// Describe walks the command tree rooted at root.
func Describe(root *cobra.Command) (*Definition, error) {
	commands, err := describeCommands(root.Commands())
	if err != nil {
		return nil, err
	}
	return &Definition{
		Name:     root.Name(),
		Version:  root.Version,
		Commands: commands,
		Flags:    describeFlags(root.PersistentFlags()),
	}, nil
}

func describeCommands(cmds []*cobra.Command) ([]CommandDefinition, error) {
	out := make([]CommandDefinition, 0, len(cmds))
	for _, c := range cmds {
		args, err := positionalArgs(c)
		if err != nil {
			return nil, err
		}
		subs, err := describeCommands(c.Commands())
		if err != nil {
			return nil, err
		}
		out = append(out, CommandDefinition{
			Name:        c.Name(),
			Short:       c.Short,
			Use:         c.Use,
			Hidden:      c.Hidden,
			Example:     c.Example,
			Args:        args,
			Flags:       describeFlags(c.Flags()),
			Subcommands: subs,
		})
	}
	return out, nil
}

func describeFlags(fs *pflag.FlagSet) []FlagDefinition {
	flags := []FlagDefinition{}
	if fs == nil {
		return flags
	}
	fs.VisitAll(func(f *pflag.Flag) {
		flags = append(flags, FlagDefinition{
			Name:        f.Name,
			Shorthand:   f.Shorthand,
			Description: f.Usage,
			Default:     f.DefValue,
		})
	})
	return flags
}

// positionalArgs returns the command's ValidArgs after checking that the
// largest argument count its validator accepts matches their number.
func positionalArgs(c *cobra.Command) ([]string, error) {
	if c.Args == nil {
		if len(c.ValidArgs) > 0 {
			return nil, ArgsMismatchError{Command: c.Name(), Named: len(c.ValidArgs)}
		}
		return []string{}, nil
	}

	accepted := 0
	for n := range maxProbedArgs {
		args := make([]string, n)
		for i := range args {
			args[i] = "arg" + strconv.Itoa(i)
		}
		if c.Args(c, args) == nil {
			accepted = n
		}
	}
	if accepted != len(c.ValidArgs) {
		return nil, ArgsMismatchError{Command: c.Name(), Accepted: accepted, Named: len(c.ValidArgs)}
	}
	if c.ValidArgs == nil {
		return []string{}, nil
	}
	return c.ValidArgs, nil
}
