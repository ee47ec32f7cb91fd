package cli

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// PlanFile is the on-disk form of a member table:
//
//	members = [0, 10, 0, 0, 0, 0, 0, 0]
type PlanFile struct {
	Members []int `toml:"members"`
}

// LoadPlanFile decodes a plan file. The member list must cover every tier.
func LoadPlanFile(path string) ([]int, error) {
	var pf PlanFile
	meta, err := toml.DecodeFile(path, &pf)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadPlanFailed, path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf(ErrMsgUnknownPlanKeys, domain.ErrInvalidInput, path, undecoded)
	}
	if len(pf.Members) != domain.TierCount {
		return nil, fmt.Errorf(ErrMsgWrongCountArgs, domain.ErrInvalidTableSize, domain.TierCount, len(pf.Members))
	}
	return pf.Members, nil
}

// parseCounts reads one member count per tier from positional arguments.
// Negative values are passed through; the plan service clamps them.
func parseCounts(args []string) ([]int, error) {
	if len(args) != domain.TierCount {
		return nil, fmt.Errorf(ErrMsgWrongCountArgs, domain.ErrInvalidTableSize, domain.TierCount, len(args))
	}
	counts := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgParseCountFailed, domain.ErrInvalidInput, arg)
		}
		counts[i] = n
	}
	return counts, nil
}

// resolveCounts picks the table from either the arguments or a plan file.
// With neither, the table stays empty.
func resolveCounts(args []string, file string) ([]int, error) {
	switch {
	case len(args) > 0 && file != "":
		return nil, fmt.Errorf(ErrMsgCountsAndFile, domain.ErrInvalidInput)
	case file != "":
		return LoadPlanFile(file)
	case len(args) > 0:
		return parseCounts(args)
	default:
		return nil, nil
	}
}
