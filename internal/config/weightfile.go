package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/zyr17/artifact-scheduler/internal/data"
)

// weightFileColumns is the fixed column order used by the legacy
// whitespace-delimited weight file format: a label followed by one
// weight per rollable affix, always in this order.
var weightFileColumns = []data.AffixKind{
	data.HP, data.ATK, data.DEF, data.HPP, data.ATKP, data.DEFP, data.EM, data.ER, data.CR, data.CD,
}

// ReadExistingWeightFile loads a legacy weight table and returns the
// scoring row matching label. Each non-empty, non-comment line is
// "label w_hp w_atk w_def w_hpp w_atkp w_defp w_em w_er w_cr w_cd". The
// recharge weight is never read from the file: recharge can be any
// weight, so it is always re-rolled uniformly in [0, 1) at load time.
func ReadExistingWeightFile(rng *data.RNG, path, label string) (map[data.AffixKind]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("weight file: opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != len(weightFileColumns)+1 {
			continue
		}
		if fields[0] != label {
			continue
		}
		out := make(map[data.AffixKind]float64, len(weightFileColumns))
		for i, aff := range weightFileColumns {
			if aff == data.ER {
				out[data.ER] = rng.Float64()
				continue
			}
			w, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("weight file: row %q column %d: %w", label, i+1, err)
			}
			out[aff] = w
		}
		return out, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("weight file: reading %s: %w", path, err)
	}
	return nil, &data.LookupError{Msg: fmt.Sprintf("weight file: label %q not found in %s", label, path)}
}
