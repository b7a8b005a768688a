/*
Package cron parses five field schedule expressions (second, minute, hour,
day-of-month, month) into immutable Rules, matches instants against them and
dispatches actions once per matching second.

Day-of-month items may carry a weekday condition: "1-7&FRI" is the first
Friday of a month, "1-7!FRI" the first week except Friday. A Rule satisfies
the github.com/robfig/cron Schedule interface.
*/
package cron
