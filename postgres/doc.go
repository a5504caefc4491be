/*
Package postgres connects enumfield Fields to a PostgreSQL database through gorm.
As part of the connection process, we also ensure that all migrations
have been run on the proper database.
The situation where the database is simply a target for some testing has been
considered as well. In this scenario, we are dropping the public schema.

Fields carry enough configuration to derive their own columns:
[AddEnumColumn] and [ChangeEnumColumn] build migrations
adding a column sized to the Field and constrained to its Enum's values.
*/
package postgres
