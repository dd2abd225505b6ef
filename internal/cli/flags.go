package cli

import (
	"strings"

	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/spf13/pflag"
)

// sortFlag is a pflag.Value that only accepts known sort criteria.
type sortFlag struct {
	value *domain.SortCriterion
}

var _ pflag.Value = sortFlag{}

func newSortFlag(target *domain.SortCriterion, def domain.SortCriterion) sortFlag {
	*target = def
	return sortFlag{value: target}
}

func (f sortFlag) String() string {
	if f.value == nil {
		return ""
	}
	return string(*f.value)
}

func (f sortFlag) Set(s string) error {
	c, err := domain.ParseSortCriterion(s)
	if err != nil {
		return err
	}
	*f.value = c
	return nil
}

func (f sortFlag) Type() string { return "sort" }

func sortUsage() string {
	names := make([]string, len(domain.SortCriteria))
	for i, c := range domain.SortCriteria {
		names[i] = string(c)
	}
	return "Sort order: " + strings.Join(names, ", ")
}

func addSortFlag(fs *pflag.FlagSet, target *domain.SortCriterion, def domain.SortCriterion) {
	fs.Var(newSortFlag(target, def), "sort", sortUsage())
}
