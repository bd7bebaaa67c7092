// Package dto contains the JSON request bodies accepted by the API.
//
// Field names match the column names the front-end already uses
// (first_name, account_name, amount_limit, ...). Bodies are only decoded;
// ToInput converts them into repository inputs.
package dto
