// Package chart turns price history into chart entries and draws them.
//
// Project is pure: one Entry per PricePoint, in input order, with a
// locale-formatted label. A missing price stays missing (Price == nil) and
// is shown as Placeholder, never as zero. Draw renders the entries as a
// horizontal bar chart for the terminal.
package chart
