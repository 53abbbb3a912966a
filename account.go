package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type depositRequest struct {
	Amount uint64 `json:"amount"`
}

func handleDeposit() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := c.Param("account")

		var req depositRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := ledger.Deposit(account, req.Amount); err != nil {
			checkErr(c, err)
			return
		}

		balance, err := ledger.Balance(account)
		if err != nil {
			checkErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"account": account, "balance": balance})
	}
}

func handleBalance() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := c.Param("account")

		balance, err := ledger.Balance(account)
		if err != nil {
			checkErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"account": account, "balance": balance})
	}
}
