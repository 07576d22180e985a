package booking

import "github.com/m04kA/OtoCare-BookingService/pkg/dbmetrics"

// Используем интерфейсы dbmetrics для доступа к БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
