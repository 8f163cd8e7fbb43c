package tour

import "github.com/dobaato-technical/KnowALocal-sub000/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
