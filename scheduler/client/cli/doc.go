/*
Package cli provides the capsched command line: it builds a CapacityScheduler
from a built-in or literal JSON config, places the configured batch, simulates
a worker failure and prints the distribution before and after.
*/
package cli
