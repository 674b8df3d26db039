// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// modeParams holds internal optimizer parameters for one compression mode.
// All fields are unexported; the type is used only inside the package.
type modeParams struct {
	maxOffset int // match offset ceiling
	survivors int // bucket beam width (candidate parses kept per position)
}

// fixedModes defines parameters for best and quick modes. The beam width is
// the single ratio/speed tunable; quick mode also drops the offset ceiling
// to the classic ZX7 limit.
var fixedModes = [2]modeParams{
	{maxOffsetBest, 32}, // best
	{maxOffsetQuick, 8}, // quick
}
