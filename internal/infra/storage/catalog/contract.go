package catalog

import "github.com/m04kA/OtoCare-BookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
