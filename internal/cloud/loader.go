package cloud

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"pointcloud-renderer/internal/mathutil"
)

// LoadXYZ reads a whitespace-separated ASCII point file. Each line holds
// "x y z" or "x y z r g b" with colors in 0–255. Blank lines and lines
// starting with '#' are skipped.
func LoadXYZ(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cloud: open %s: %w", path, err)
	}
	defer f.Close()

	var points []Point
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 && len(fields) != 6 {
			return nil, fmt.Errorf("cloud: %s line %d: expected 3 or 6 fields, got %d", path, lineNo, len(fields))
		}

		var pos mathutil.Vec3
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("cloud: %s line %d: %w", path, lineNo, err)
			}
			pos[i] = v
		}

		c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		if len(fields) == 6 {
			var rgb [3]uint8
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseUint(fields[3+i], 10, 8)
				if err != nil {
					return nil, fmt.Errorf("cloud: %s line %d: %w", path, lineNo, err)
				}
				rgb[i] = uint8(v)
			}
			c = color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
		}

		points = append(points, Point{Position: pos, Color: c})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cloud: read %s: %w", path, err)
	}

	return points, nil
}
