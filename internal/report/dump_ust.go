package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zyr17/artifact-scheduler/internal/dp"
)

// ustDump mirrors the original debug dump's shape: for each UST level,
// group codes by their path count, plus a "0" sentinel entry recording
// the level's total path count (16^k) for a quick eyeball check.
type ustDump struct {
	Level int           `yaml:"level"`
	Total int           `yaml:"total"`
	Count map[int][]int `yaml:"count"`
}

// DumpUST writes a YAML debug dump of every UST level to path.
func DumpUST(path string) error {
	levels := make([]ustDump, 0, dp.N+1)
	for k := 0; k <= dp.N; k++ {
		entries := dp.UST(k)
		byCount := make(map[int][]int)
		total := 0
		for _, e := range entries {
			byCount[e.Count] = append(byCount[e.Count], e.Code)
			total += e.Count
		}
		byCount[0] = []int{total}
		levels = append(levels, ustDump{Level: k, Total: total, Count: byCount})
	}

	b, err := yaml.Marshal(levels)
	if err != nil {
		return fmt.Errorf("report: marshaling ust dump: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("report: writing %s: %w", path, err)
	}
	return nil
}
