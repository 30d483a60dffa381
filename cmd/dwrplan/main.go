// dwrplan is the command line front end: it loads or generates scenarios,
// searches for plans, replays and benchmarks them, and exports instances
// for external planners.
package main

func main() {
	Execute()
}
