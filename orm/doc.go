/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
Each bucket contains only one type of model, stored under its primary key.
Models are serialized as JSON.
*/
package orm
