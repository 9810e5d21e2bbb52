package booking

import "github.com/m04kA/curbside-pickup/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics: репозиторий работает и с *dbmetrics.DB, и с транзакцией из context
type DBExecutor = dbmetrics.DBExecutor
