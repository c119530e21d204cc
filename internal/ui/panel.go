package ui

// PanelWidth is the width in pixels of the scoreboard next to the board.
const PanelWidth = 140
