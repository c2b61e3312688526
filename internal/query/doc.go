// Package query holds the filter, keyword, aggregation and sort rules shared by
// every job store.
//
// Each rule has two renderings that must agree: Match evaluates it against an
// in-memory job, and Clause renders it as a SQL condition over the jobs table
// so it can be pushed down into the database.
package query
