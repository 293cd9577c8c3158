// Package encode writes results as tables, YAML or JSON.
//
// Values implementing [Tabler] are written as tables in [format.TableFormat];
// every other value is written as YAML in that format.
package encode
