/*
Copyright (c) the queryanonymizer authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package dialect

// Keyword tables for the supported dialects. SQL is the shared base; TSQL,
// MySQL and PLSQL extend it with their dialect-specific reserved words and
// builtins. DAX stands alone since it shares almost nothing with SQL.

var sqlKeywords = []string{
	"ABS", "ALL", "ALTER", "AND", "ANY", "AS", "ASC", "AVG",
	"BEGIN", "BETWEEN", "BIGINT", "BOOLEAN", "BY",
	"CASCADE", "CASE", "CAST", "CEIL", "CEILING", "CHAR", "CHECK", "COALESCE",
	"COLUMN", "COMMIT", "CONCAT", "CONSTRAINT", "COUNT", "CREATE", "CROSS",
	"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER",
	"DATE", "DECIMAL", "DEFAULT", "DELETE", "DESC", "DISTINCT", "DOUBLE",
	"DROP", "ELSE", "END", "ESCAPE", "EXCEPT", "EXISTS", "EXTRACT",
	"FALSE", "FETCH", "FIRST", "FLOAT", "FLOOR", "FOR", "FOREIGN", "FROM",
	"FULL", "GRANT", "GROUP", "HAVING",
	"IN", "INDEX", "INNER", "INSERT", "INT", "INTEGER", "INTERSECT",
	"INTERVAL", "INTO", "IS", "JOIN", "KEY",
	"LAST", "LEFT", "LENGTH", "LIKE", "LIMIT", "LOWER",
	"MAX", "MIN", "MOD", "NATURAL", "NOT", "NULL", "NULLIF", "NUMERIC",
	"OFFSET", "ON", "OR", "ORDER", "OUTER", "OVER",
	"PARTITION", "POWER", "PRECISION", "PRIMARY",
	"RANK", "REAL", "REFERENCES", "RESTRICT", "REVOKE", "RIGHT", "ROLLBACK",
	"ROUND", "ROW", "ROWS", "ROW_NUMBER",
	"SELECT", "SET", "SMALLINT", "SOME", "SQRT", "SUBSTRING", "SUM",
	"TABLE", "THEN", "TIME", "TIMESTAMP", "TO", "TRIM", "TRUE", "TRUNCATE",
	"UNION", "UNIQUE", "UPDATE", "UPPER", "USING",
	"VALUES", "VARCHAR", "VIEW", "WHEN", "WHERE", "WITH",
}

var tsqlKeywords = []string{
	"APPLY", "BULK", "CLUSTERED", "CONVERT", "DATEADD", "DATEDIFF",
	"DATENAME", "DATEPART", "DBCC", "DECLARE", "EXEC", "EXECUTE",
	"GETDATE", "GETUTCDATE", "GO", "HOLDLOCK", "IDENTITY", "IDENTITY_INSERT",
	"IIF", "ISNULL", "LEN", "MERGE", "NCHAR", "NOCOUNT", "NOLOCK",
	"NTEXT", "NVARCHAR", "OPENQUERY", "OPENROWSET", "OUTPUT", "PIVOT",
	"PRINT", "RAISERROR", "READTEXT", "ROWCOUNT", "ROWGUIDCOL", "STUFF",
	"TEXTSIZE", "TOP", "TRAN", "TRANSACTION", "TRY_CONVERT", "UNPIVOT",
	"UPDATETEXT", "WAITFOR", "WHILE", "WRITETEXT",
}

var mysqlKeywords = []string{
	"AUTO_INCREMENT", "BINARY", "BLOB", "CHANGE", "CURDATE", "CURTIME",
	"DATABASE", "DATABASES", "DATETIME", "DATE_ADD", "DATE_FORMAT",
	"DATE_SUB", "DELAYED", "DESCRIBE", "DIV", "DUAL", "ENGINE", "ENUM",
	"EXPLAIN", "FORCE", "FULLTEXT", "GROUP_CONCAT", "HIGH_PRIORITY",
	"IFNULL", "IGNORE", "KILL", "LOAD", "LOCK", "LONGBLOB", "LONGTEXT",
	"LOW_PRIORITY", "MEDIUMINT", "MEDIUMTEXT", "NOW", "OPTIMIZE",
	"REGEXP", "RENAME", "REPLACE", "RLIKE", "SHOW", "STRAIGHT_JOIN",
	"TABLES", "TINYINT", "TINYTEXT", "UNLOCK", "UNSIGNED", "USE",
	"UTC_TIMESTAMP", "XOR", "ZEROFILL",
}

var plsqlKeywords = []string{
	"ANYDATA", "BFILE", "BINARY_DOUBLE", "BINARY_FLOAT", "BODY", "BULK",
	"CLOB", "COLLECT", "CONNECT", "CURSOR", "DBMS_OUTPUT", "DECODE",
	"DUAL", "ELSIF", "EXCEPTION", "EXIT", "FORALL", "FUNCTION", "GOTO",
	"IF", "IMMEDIATE", "LEVEL", "LISTAGG", "LOOP", "MINUS", "NCLOB",
	"NOCOPY", "NVL", "NVL2", "OTHERS", "OUT", "PACKAGE", "PRAGMA",
	"PRIOR", "PROCEDURE", "RAISE", "RECORD", "RETURN", "RETURNING",
	"ROWID", "ROWNUM", "ROWTYPE", "SEQUENCE", "START", "SYSDATE",
	"SYSTIMESTAMP", "TO_CHAR", "TO_DATE", "TO_NUMBER", "TO_TIMESTAMP",
	"TRIGGER", "TYPE", "VARCHAR2", "VARRAY", "WHILE",
}

var daxKeywords = []string{
	"ABS", "ADDCOLUMNS", "ALL", "ALLEXCEPT", "ALLSELECTED", "AND",
	"AVERAGE", "AVERAGEX", "BLANK", "CALCULATE", "CALCULATETABLE",
	"CALENDAR", "CALENDARAUTO", "CONCATENATE", "CONCATENATEX", "CONTAINS",
	"COUNT", "COUNTA", "COUNTAX", "COUNTBLANK", "COUNTROWS", "COUNTX",
	"CROSSFILTER", "CROSSJOIN", "DATE", "DATEADD", "DATEDIFF",
	"DATESBETWEEN", "DATESINPERIOD", "DATESMTD", "DATESQTD", "DATESYTD",
	"DATEVALUE", "DAY", "DEFINE", "DISTINCT", "DISTINCTCOUNT", "DIVIDE",
	"EARLIER", "EARLIEST", "EDATE", "ENDOFMONTH", "ENDOFQUARTER",
	"ENDOFYEAR", "EOMONTH", "EVALUATE", "EXCEPT", "FALSE", "FILTER",
	"FIND", "FIRSTDATE", "FORMAT", "GENERATE", "GENERATESERIES",
	"HASONEVALUE", "HOUR", "IF", "IFERROR", "IGNORE", "INTERSECT",
	"ISBLANK", "ISEMPTY", "ISERROR", "ISFILTERED", "ISLOGICAL",
	"ISNUMBER", "ISTEXT", "KEEPFILTERS", "LASTDATE", "LEFT", "LEN",
	"LOOKUPVALUE", "LOWER", "MAX", "MAXX", "MEASURE", "MID", "MIN",
	"MINUTE", "MINX", "MONTH", "NATURALINNERJOIN", "NATURALLEFTOUTERJOIN",
	"NOT", "NOW", "OR", "ORDER", "PARALLELPERIOD", "QUARTER", "RANKX",
	"RELATED", "RELATEDTABLE", "REMOVEFILTERS", "REPLACE", "REPT",
	"RETURN", "RIGHT", "ROUND", "ROUNDDOWN", "ROUNDUP", "ROW",
	"SAMEPERIODLASTYEAR", "SEARCH", "SECOND", "SELECTCOLUMNS",
	"SELECTEDVALUE", "STARTOFMONTH", "STARTOFQUARTER", "STARTOFYEAR",
	"SUBSTITUTE", "SUM", "SUMMARIZE", "SUMMARIZECOLUMNS", "SUMX",
	"SWITCH", "TIME", "TODAY", "TOPN", "TOTALMTD", "TOTALQTD", "TOTALYTD",
	"TREATAS", "TRIM", "TRUE", "UNION", "UPPER", "USERELATIONSHIP",
	"VALUE", "VALUES", "VAR", "WEEKDAY", "WEEKNUM", "YEAR", "YEARFRAC",
}
