// meta/meta.go
package meta

// GAMES defines the number of matches played per matchup.
const GAMES = 1000

// SEED defines the seed of the first match's deck; match i uses SEED+i.
const SEED = 1

// PARALLELISM defines the number of matches run at once.
const PARALLELISM = 8

// MAX_TURNS bounds a single match. A two player game cannot legally run this long.
const MAX_TURNS = 200

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "results"
