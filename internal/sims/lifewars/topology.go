package lifewars

// neighbourOffsets lists the Moore neighbourhood as (dx, dy): the row below,
// the same row, then the row above.
var neighbourOffsets = [NumNeighbours][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// buildTopology stores the wrapped neighbour indices of every cell. It runs
// once per board; the indices never change afterwards.
func (b *Board) buildTopology() {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			c := &b.cells[b.Index(x, y)]
			for k, off := range neighbourOffsets {
				nx, ny := b.Wrap(x+off[0], y+off[1])
				c.adj[k] = int32(b.Index(nx, ny))
			}
		}
	}
}
