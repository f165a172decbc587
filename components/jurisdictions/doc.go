// Package jurisdictions provides the US state list behind "state" intake
// questions, lookup and search helpers, and a small net/http handler that
// returns JSON options for form inputs.
//
// The default handler responds to GET requests and supports query and limit
// parameters. The backing data is the embedded list under
// data/us_jurisdictions.txt.
package jurisdictions
